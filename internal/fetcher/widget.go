package fetcher

import (
	"context"
	"encoding/json"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriGen/internal/logger"
	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/ui/styles"
)

type fetchedMsg struct {
	data json.RawMessage
	err  error
}

// Widget shows the fetched document. The fetch runs once, from Init.
type Widget struct {
	client *Client
	data   json.RawMessage
	theme  models.Theme
	format Format
}

func NewWidget(client *Client, theme models.Theme) *Widget {
	return &Widget{
		client: client,
		data:   json.RawMessage("[]"),
		theme:  theme,
		format: FormatJSON,
	}
}

// WithFormat sets how the document is rendered.
func (w *Widget) WithFormat(f Format) *Widget {
	w.format = f
	return w
}

func (w *Widget) Init() tea.Cmd {
	return func() tea.Msg {
		data, err := w.client.Fetch(context.Background())
		return fetchedMsg{data: data, err: err}
	}
}

func (w *Widget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		if msg.err != nil {
			logger.Errorf("Error fetching data from %s: %v", w.client.URL(), msg.err)
			return w, nil
		}
		w.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return w, tea.Quit
		}
	}
	return w, nil
}

// Data returns the current document decoded.
func (w *Widget) Data() (any, error) {
	return Decode(w.data)
}

func (w *Widget) View() string {
	p := styles.For(w.theme)

	var b strings.Builder
	b.WriteString(styles.TitleStyle(p).Render("Fetched Data from Backend:"))
	b.WriteString("\n")
	b.WriteString(styles.CodeStyle(p).Render(Render(w.data, w.format)))
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle(p).Render("q: quit"))
	b.WriteString("\n")
	return b.String()
}
