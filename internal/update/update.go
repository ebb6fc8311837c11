package update

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriGen/internal/dispatcher"
	"github.com/Rorical/RoriGen/internal/session"
)

func HandleUpdate(ui UI, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(ui, msg)
	case tea.WindowSizeMsg:
		return HandleWindowSizeMsg(ui, msg)
	case dispatcher.CoreEventMsg:
		return HandleCoreEvent(ui, msg)
	case session.RevealTickMsg:
		return ui.Session.HandleRevealTick(msg)
	case session.CopyResetMsg:
		ui.Session.HandleCopyReset(msg)
		return nil
	case session.ExportDoneMsg:
		HandleExportDone(ui, msg)
		return nil
	case spinner.TickMsg:
		return HandleSpinnerTick(ui, msg)
	}

	// Internal messages of the bubbles components (directory reads, cursor
	// blink) go to both; each ignores what is not its own.
	var pickerCmd, editorCmd tea.Cmd
	*ui.Picker, pickerCmd = ui.Picker.Update(msg)
	*ui.Editor, editorCmd = ui.Editor.Update(msg)
	return tea.Batch(pickerCmd, editorCmd)
}
