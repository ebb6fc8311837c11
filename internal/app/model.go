package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriGen/internal/dispatcher"
	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/internal/session"
	"github.com/Rorical/RoriGen/internal/update"
	"github.com/Rorical/RoriGen/ui/components"
)

type AppModel struct {
	appModel   models.AppModel
	session    *session.Controller
	dispatcher *dispatcher.EventDispatcher

	editor  textarea.Model
	spinner spinner.Model
	picker  filepicker.Model
	keys    update.KeyMap
	help    help.Model
}

func (m *AppModel) ui() update.UI {
	return update.UI{
		App:     &m.appModel,
		Session: m.session,
		Editor:  &m.editor,
		Spinner: &m.spinner,
		Picker:  &m.picker,
		Keys:    m.keys,
	}
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.picker.Init(),
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := update.HandleUpdate(m.ui(), msg)

	// Keep exactly one listener pending on the core channel.
	if _, ok := msg.(dispatcher.CoreEventMsg); ok {
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}
	return m, cmd
}

func (m *AppModel) View() string {
	s := m.session.State()
	width := m.appModel.Width

	var b strings.Builder
	b.WriteString(components.RenderHeader(s.Theme, width))
	b.WriteString("\n\n")

	if m.appModel.Focus == models.FocusPicker {
		b.WriteString(components.RenderPicker(m.picker.View(), m.picker.CurrentDirectory, s.Theme))
	} else {
		b.WriteString(components.RenderInput(m.editor.View(), s, m.spinner.View(), width))
	}
	b.WriteString("\n")
	b.WriteString(components.RenderResponse(s, width))
	b.WriteString("\n\n")

	m.help.ShowAll = m.appModel.ShowHelp
	b.WriteString(components.RenderHelp(m.help.View(m.keys), s.Theme))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.appModel.Status, s.Theme, width))

	return b.String()
}
