package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/ui/styles"
)

const (
	ResponseHeading    = "🔍 AI Response:"
	WaitingPlaceholder = "⏳ Please wait..."
	EmptyPlaceholder   = "Your AI-generated content will appear here..."
	CopyLabel          = "📋 Copy"
	CopiedLabel        = "✅ Copied!"
	ExportLabel        = "📄 Export to PDF"
)

// RenderResponse draws the response box. The copy label and the export
// button only appear once there is a response.
func RenderResponse(s models.Session, width int) string {
	p := styles.For(s.Theme)
	var b strings.Builder

	b.WriteString(styles.HeadingStyle(p).Render(ResponseHeading))
	b.WriteString("\n")

	var body string
	if s.Response != "" {
		label := CopyLabel
		if s.Copied {
			label = CopiedLabel
		}
		boxWidth := max(width-4, 10)
		copyLine := lipgloss.PlaceHorizontal(boxWidth-6, lipgloss.Right, styles.CopyLabelStyle(p, s.Copied).Render(label))
		body = copyLine + "\n" + s.Response
	} else if s.Busy {
		body = styles.PlaceholderStyle(p).Render(WaitingPlaceholder)
	} else {
		body = styles.PlaceholderStyle(p).Render(EmptyPlaceholder)
	}
	b.WriteString(styles.ResponseBoxStyle(p, width).Render(body))

	if s.Response != "" {
		b.WriteString("\n")
		b.WriteString(styles.ExportButtonStyle(p).Render(ExportLabel))
	}
	return b.String()
}
