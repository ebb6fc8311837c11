package update

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriGen/internal/dispatcher"
	"github.com/Rorical/RoriGen/internal/eventbus"
	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/internal/session"
)

type countingRequester struct {
	ids     []uint64
	prompts []string
}

func (r *countingRequester) RequestGeneration(id uint64, prompt string) error {
	r.ids = append(r.ids, id)
	r.prompts = append(r.prompts, prompt)
	return nil
}

type memClipboard struct{ text string }

func (m *memClipboard) WriteAll(text string) error {
	m.text = text
	return nil
}

func immediate(_ time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func newTestUI(t *testing.T) (UI, *countingRequester, *memClipboard) {
	t.Helper()
	req := &countingRequester{}
	cb := &memClipboard{}

	editor := textarea.New()
	editor.Focus()
	spin := spinner.New()
	picker := filepicker.New()

	ui := UI{
		App:     &models.AppModel{Status: StatusReady},
		Session: session.New(req, session.WithScheduler(immediate), session.WithClipboard(cb)),
		Editor:  &editor,
		Spinner: &spin,
		Picker:  &picker,
		Keys:    DefaultKeyMap(),
	}
	return ui, req, cb
}

func typeText(ui UI, s string) {
	HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func drain(ui UI, cmd tea.Cmd) {
	for cmd != nil {
		msg, ok := cmd().(session.RevealTickMsg)
		if !ok {
			return
		}
		cmd = HandleUpdate(ui, msg)
	}
}

func TestEnterSubmitsPrompt(t *testing.T) {
	ui, req, _ := newTestUI(t)

	typeText(ui, "hello")
	assert.Equal(t, "hello", ui.Session.State().Prompt)

	HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"hello"}, req.prompts)
	assert.Equal(t, "", ui.Editor.Value())
	assert.True(t, ui.Session.Busy())
	assert.Equal(t, StatusGenerating, ui.App.Status)

	// A second enter while busy does nothing.
	typeText(ui, "again")
	HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, req.prompts, 1)
}

func TestEnterOnBlankPromptIsIgnored(t *testing.T) {
	ui, req, _ := newTestUI(t)

	typeText(ui, "   ")
	HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, req.prompts)
	assert.False(t, ui.Session.Busy())
	assert.Equal(t, StatusReady, ui.App.Status)
}

func TestCoreResultRevealsResponse(t *testing.T) {
	ui, req, _ := newTestUI(t)
	typeText(ui, "hello")
	HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyEnter})

	cmd := HandleUpdate(ui, dispatcher.CoreEventMsg{Event: eventbus.GenerationResultEvent{
		RequestID: req.ids[0],
		Text:      "hi there",
	}})
	drain(ui, cmd)

	assert.Equal(t, "hi there", ui.Session.Response())
	assert.False(t, ui.Session.Busy())
	assert.Equal(t, StatusReady, ui.App.Status)
}

func TestCoreErrorShowsFixedMessage(t *testing.T) {
	ui, req, _ := newTestUI(t)
	typeText(ui, "hello")
	HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyEnter})

	HandleUpdate(ui, dispatcher.CoreEventMsg{Event: eventbus.GenerationResultEvent{
		RequestID: req.ids[0],
		Err:       errors.New("connection refused"),
	}})

	assert.Equal(t, session.ErrorMessage, ui.Session.Response())
	assert.False(t, ui.Session.Busy())
	assert.Contains(t, ui.App.Status, "connection refused")
}

func TestCopyAndThemeKeys(t *testing.T) {
	ui, req, cb := newTestUI(t)

	// Nothing to copy yet.
	assert.Nil(t, HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyCtrlY}))

	typeText(ui, "hello")
	HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyEnter})
	drain(ui, HandleUpdate(ui, dispatcher.CoreEventMsg{Event: eventbus.GenerationResultEvent{RequestID: req.ids[0], Text: "ok"}}))

	cmd := HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	assert.Equal(t, "ok", cb.text)
	assert.True(t, ui.Session.State().Copied)

	HandleUpdate(ui, cmd())
	assert.False(t, ui.Session.State().Copied)

	HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, models.Dark, ui.Session.Theme())
	HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, models.Light, ui.Session.Theme())
}

func TestAttachKeyOpensPicker(t *testing.T) {
	ui, _, _ := newTestUI(t)

	HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Equal(t, models.FocusPicker, ui.App.Focus)

	HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, models.FocusPrompt, ui.App.Focus)
	assert.Nil(t, ui.Session.State().Attached)
}

func TestWindowSize(t *testing.T) {
	ui, _, _ := newTestUI(t)
	HandleUpdate(ui, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, ui.App.Width)
	assert.Equal(t, 40, ui.App.Height)
}

func TestQuit(t *testing.T) {
	ui, _, _ := newTestUI(t)
	cmd := HandleUpdate(ui, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
