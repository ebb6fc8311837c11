package app

import (
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriGen/internal/clipboard"
	"github.com/Rorical/RoriGen/internal/config"
	"github.com/Rorical/RoriGen/internal/core"
	"github.com/Rorical/RoriGen/internal/dispatcher"
	"github.com/Rorical/RoriGen/internal/eventbus"
	"github.com/Rorical/RoriGen/internal/export"
	"github.com/Rorical/RoriGen/internal/logger"
	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/internal/session"
	"github.com/Rorical/RoriGen/internal/update"
)

// Options carries command-line overrides.
type Options struct {
	Attach string // File to attach at start
	Theme  string // "light" or "dark"; empty uses config
}

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.GenerationService
	model      *AppModel
}

func NewApplication(cfg *config.Config, opts Options) (*Application, error) {
	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(err eventbus.EventBusError) {
		logger.Errorf("event bus: %v (circuit %s)", err, eb.GetCircuitBreakerState())
	})

	disp := dispatcher.NewEventDispatcher(eb)

	// The service always exists; without a provider it answers with errors.
	service := core.NewGenerationService(core.NewGenerator(cfg), eb)

	theme := models.ParseTheme(cfg.GetTheme())
	if opts.Theme != "" {
		theme = models.ParseTheme(opts.Theme)
	}

	ctrl := session.New(disp,
		session.WithClipboard(clipboard.New()),
		session.WithExporter(export.NewPDFExporter(cfg.GetExportDir(), cfg.GetExportFont())),
		session.WithTheme(theme),
	)
	if opts.Attach != "" {
		ctrl.Attach(models.NewFileHandle(opts.Attach))
	}

	model := newAppModel(ctrl, disp, service.IsReady())

	logger.Infof("starting with profile %q (provider %s, backend %s)",
		cfg.ActiveProfile, cfg.GetProvider(), cfg.GetBackendURL())

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.dispatcher.Stop()
	app.service.Stop()
	app.eventBus.Close()
}

func newAppModel(ctrl *session.Controller, disp *dispatcher.EventDispatcher, ready bool) *AppModel {
	editor := textarea.New()
	editor.Placeholder = "Enter your prompt..."
	editor.ShowLineNumbers = false
	editor.SetHeight(4)
	editor.KeyMap.InsertNewline = update.DefaultKeyMap().Newline
	editor.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	picker := filepicker.New()
	if wd, err := os.Getwd(); err == nil {
		picker.CurrentDirectory = wd
	}

	status := update.StatusReady
	if !ready {
		status = update.StatusNotConfigured
	}

	return &AppModel{
		appModel: models.AppModel{
			Status: status,
			Width:  80,
		},
		session:    ctrl,
		dispatcher: disp,
		editor:     editor,
		spinner:    spin,
		picker:     picker,
		keys:       update.DefaultKeyMap(),
		help:       help.New(),
	}
}
