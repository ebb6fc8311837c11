package update

import (
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriGen/internal/dispatcher"
	"github.com/Rorical/RoriGen/internal/eventbus"
	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/internal/session"
)

const (
	StatusReady         = "Ready"
	StatusGenerating    = "Generating"
	StatusNotConfigured = "Generation service not configured - run: rorigen profile add"
)

// UI bundles the state an update handler may touch. The session controller
// is the only owner of prompt session state; everything else is view state.
type UI struct {
	App     *models.AppModel
	Session *session.Controller
	Editor  *textarea.Model
	Spinner *spinner.Model
	Picker  *filepicker.Model
	Keys    KeyMap
}

// HandleKeyMsg routes a key press to the focused pane.
func HandleKeyMsg(ui UI, keyMsg tea.KeyMsg) tea.Cmd {
	if key.Matches(keyMsg, ui.Keys.Quit) {
		return tea.Quit
	}
	if ui.App.Focus == models.FocusPicker {
		return handlePickerKey(ui, keyMsg)
	}

	switch {
	case key.Matches(keyMsg, ui.Keys.Submit):
		return handleSubmit(ui)
	case key.Matches(keyMsg, ui.Keys.Copy):
		return handleCopy(ui)
	case key.Matches(keyMsg, ui.Keys.Export):
		return handleExport(ui)
	case key.Matches(keyMsg, ui.Keys.Attach):
		ui.App.Focus = models.FocusPicker
		ui.Editor.Blur()
		return ui.Picker.Init()
	case key.Matches(keyMsg, ui.Keys.Theme):
		ui.Session.ToggleTheme()
		return nil
	case key.Matches(keyMsg, ui.Keys.Help):
		ui.App.ShowHelp = !ui.App.ShowHelp
		return nil
	}

	var cmd tea.Cmd
	*ui.Editor, cmd = ui.Editor.Update(keyMsg)
	ui.Session.SetPrompt(ui.Editor.Value())
	return cmd
}

func handleSubmit(ui UI) tea.Cmd {
	// Generating is disabled while a request is pending.
	if ui.Session.Busy() {
		return nil
	}
	if !ui.Session.Submit(ui.Editor.Value()) {
		return nil
	}

	ui.Editor.Reset()
	if ui.Session.Busy() {
		ui.App.Status = StatusGenerating
	} else {
		ui.App.Status = "Error sending request"
	}
	return ui.Spinner.Tick
}

func handleCopy(ui UI) tea.Cmd {
	if ui.Session.Response() == "" {
		return nil
	}
	cmd, err := ui.Session.Copy()
	if err != nil {
		ui.App.Status = "Copy failed: " + err.Error()
		return nil
	}
	ui.App.Status = "Response copied to clipboard"
	return cmd
}

func handleExport(ui UI) tea.Cmd {
	cmd := ui.Session.Export()
	if cmd != nil {
		ui.App.Status = "Exporting PDF"
	}
	return cmd
}

func handlePickerKey(ui UI, keyMsg tea.KeyMsg) tea.Cmd {
	if key.Matches(keyMsg, ui.Keys.Back) {
		closePicker(ui)
		return nil
	}

	var cmd tea.Cmd
	*ui.Picker, cmd = ui.Picker.Update(keyMsg)
	if ok, path := ui.Picker.DidSelectFile(keyMsg); ok {
		handle := models.NewFileHandle(path)
		ui.Session.Attach(handle)
		ui.App.Status = "Attached " + handle.Name
		closePicker(ui)
	}
	return cmd
}

func closePicker(ui UI) {
	ui.App.Focus = models.FocusPrompt
	ui.Editor.Focus()
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(ui UI, msg dispatcher.CoreEventMsg) tea.Cmd {
	switch event := msg.Event.(type) {
	case eventbus.GenerationResultEvent:
		wasBusy := ui.Session.Busy()
		cmd := ui.Session.HandleResult(models.GenerationResult{
			RequestID: event.RequestID,
			Text:      event.Text,
			Err:       event.Err,
		})
		if wasBusy && !ui.Session.Busy() {
			if event.Err != nil {
				ui.App.Status = "Error: " + event.Err.Error()
			} else {
				ui.App.Status = StatusReady
			}
		}
		return cmd
	}
	return nil
}

func HandleWindowSizeMsg(ui UI, sizeMsg tea.WindowSizeMsg) tea.Cmd {
	ui.App.Width = sizeMsg.Width
	ui.App.Height = sizeMsg.Height
	ui.Editor.SetWidth(max(sizeMsg.Width-8, 10))

	var cmd tea.Cmd
	*ui.Picker, cmd = ui.Picker.Update(sizeMsg)
	return cmd
}

func HandleExportDone(ui UI, msg session.ExportDoneMsg) {
	if msg.Err != nil {
		ui.App.Status = "Export failed: " + msg.Err.Error()
		return
	}
	ui.App.Status = "Saved " + msg.Path
}

func HandleSpinnerTick(ui UI, msg spinner.TickMsg) tea.Cmd {
	// Let the spinner stop once the request settles.
	if !ui.Session.Busy() {
		return nil
	}
	var cmd tea.Cmd
	*ui.Spinner, cmd = ui.Spinner.Update(msg)
	return cmd
}
