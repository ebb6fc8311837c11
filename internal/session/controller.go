// Package session owns the prompt session state and every transition on it.
//
// The controller is driven from the Bubble Tea update loop, which is the only
// goroutine that touches it. Timed work (the typing reveal and the copied
// flag reset) is scheduled as tea commands that carry a generation token;
// a message whose token is no longer current is ignored, so superseded work
// can never write into the session.
package session

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriGen/internal/logger"
	"github.com/Rorical/RoriGen/internal/models"
)

const (
	RevealInterval = 30 * time.Millisecond
	CopiedWindow   = 2000 * time.Millisecond
	ErrorMessage   = "❌ Error fetching response. Please try again."
)

// Requester issues one generation call for a prompt. The result is fed back
// through HandleResult.
type Requester interface {
	RequestGeneration(requestID uint64, prompt string) error
}

type Clipboard interface {
	WriteAll(text string) error
}

// Exporter renders the response into a document and returns its path.
type Exporter interface {
	Export(text string, theme models.Theme) (string, error)
}

// Scheduler returns a command delivering msg after d.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

func TeaScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

type RevealTickMsg struct {
	Generation uint64
}

type CopyResetMsg struct {
	Generation uint64
}

type ExportDoneMsg struct {
	Path string
	Err  error
}

type Option func(*Controller)

func WithClipboard(cb Clipboard) Option {
	return func(c *Controller) { c.clipboard = cb }
}

func WithExporter(ex Exporter) Option {
	return func(c *Controller) { c.exporter = ex }
}

func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.schedule = s }
}

func WithTheme(t models.Theme) Option {
	return func(c *Controller) { c.theme = t }
}

type Controller struct {
	requester Requester
	clipboard Clipboard
	exporter  Exporter
	schedule  Scheduler

	prompt   string
	response strings.Builder
	busy     bool
	copied   bool
	attached *models.FileHandle
	theme    models.Theme

	requestID uint64

	revealGen  uint64
	revealText []rune // nil when no reveal is running
	revealNext int

	copyGen uint64
}

func New(requester Requester, opts ...Option) *Controller {
	c := &Controller{
		requester: requester,
		schedule:  TeaScheduler,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() models.Session {
	s := models.Session{
		Prompt:    c.prompt,
		Response:  c.response.String(),
		Busy:      c.busy,
		Copied:    c.copied,
		Revealing: c.revealText != nil,
		Theme:     c.theme,
	}
	if c.attached != nil {
		h := *c.attached
		s.Attached = &h
	}
	return s
}

func (c *Controller) Response() string {
	return c.response.String()
}

func (c *Controller) Busy() bool {
	return c.busy
}

func (c *Controller) Theme() models.Theme {
	return c.theme
}

// SetPrompt mirrors the editor contents.
func (c *Controller) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Submit starts a generation request. Blank prompts are ignored and leave the
// session untouched; the return value reports whether a request was issued.
func (c *Controller) Submit(prompt string) bool {
	if strings.TrimSpace(prompt) == "" {
		return false
	}

	c.requestID++
	c.stopReveal()
	c.response.Reset()
	c.busy = true
	c.copied = false
	c.prompt = ""

	if err := c.requester.RequestGeneration(c.requestID, prompt); err != nil {
		logger.Errorf("request %d could not be sent: %v", c.requestID, err)
		c.fail()
	}
	return true
}

// HandleResult settles the latest request. Results of superseded requests
// are dropped.
func (c *Controller) HandleResult(res models.GenerationResult) tea.Cmd {
	if res.RequestID != c.requestID || !c.busy {
		logger.Debugf("dropping stale result for request %d (current %d)", res.RequestID, c.requestID)
		return nil
	}

	c.busy = false
	if res.Err != nil {
		logger.Errorf("request %d failed: %v", res.RequestID, res.Err)
		c.fail()
		return nil
	}
	return c.startReveal(res.Text)
}

func (c *Controller) fail() {
	c.stopReveal()
	c.busy = false
	c.response.Reset()
	c.response.WriteString(ErrorMessage)
}

func (c *Controller) startReveal(text string) tea.Cmd {
	c.stopReveal()
	c.response.Reset()

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	c.revealText = runes
	return c.schedule(RevealInterval, RevealTickMsg{Generation: c.revealGen})
}

// stopReveal invalidates every tick already scheduled for the running reveal.
func (c *Controller) stopReveal() {
	c.revealGen++
	c.revealText = nil
	c.revealNext = 0
}

// HandleRevealTick appends one character and schedules the next tick until
// the text is exhausted.
func (c *Controller) HandleRevealTick(msg RevealTickMsg) tea.Cmd {
	if msg.Generation != c.revealGen || c.revealText == nil {
		return nil
	}

	c.response.WriteRune(c.revealText[c.revealNext])
	c.revealNext++

	if c.revealNext >= len(c.revealText) {
		c.revealText = nil
		c.revealNext = 0
		return nil
	}
	return c.schedule(RevealInterval, RevealTickMsg{Generation: c.revealGen})
}

func (c *Controller) Attach(h models.FileHandle) {
	c.attached = &h
	logger.Infof("File attached: %s", h.Name)
}

// Copy writes the response to the clipboard and raises the copied flag for
// CopiedWindow. A later copy restarts the window.
func (c *Controller) Copy() (tea.Cmd, error) {
	if c.clipboard != nil {
		if err := c.clipboard.WriteAll(c.response.String()); err != nil {
			logger.Errorf("clipboard write failed: %v", err)
			return nil, err
		}
	}

	c.copied = true
	c.copyGen++
	return c.schedule(CopiedWindow, CopyResetMsg{Generation: c.copyGen}), nil
}

func (c *Controller) HandleCopyReset(msg CopyResetMsg) {
	if msg.Generation == c.copyGen {
		c.copied = false
	}
}

// Export snapshots the current response and renders it off the update loop.
func (c *Controller) Export() tea.Cmd {
	if c.exporter == nil || c.response.Len() == 0 {
		return nil
	}

	text, theme, exporter := c.response.String(), c.theme, c.exporter
	return func() tea.Msg {
		path, err := exporter.Export(text, theme)
		if err != nil {
			logger.Errorf("PDF export failed: %v", err)
		} else {
			logger.Infof("PDF exported to %s", path)
		}
		return ExportDoneMsg{Path: path, Err: err}
	}
}

func (c *Controller) ToggleTheme() {
	if c.theme == models.Dark {
		c.theme = models.Light
	} else {
		c.theme = models.Dark
	}
}
