package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/ui/styles"
)

const (
	Title           = "✨ AI Content Generator ✨"
	LightModeLabel  = "☀️ Light Mode"
	DarkModeLabel   = "🌙 Dark Mode"
	GenerateLabel   = "🚀 Generate"
	GeneratingLabel = "⏳ Generating..."
	AttachHint      = "accepts .txt, .pdf"
)

// ThemeLabel names the mode the toggle switches to.
func ThemeLabel(theme models.Theme) string {
	if theme == models.Dark {
		return LightModeLabel
	}
	return DarkModeLabel
}

func RenderHeader(theme models.Theme, width int) string {
	p := styles.For(theme)
	button := styles.ThemeButtonStyle(p).Render(ThemeLabel(theme))
	title := styles.TitleStyle(p).Render(Title)

	gap := width - lipgloss.Width(title) - lipgloss.Width(button)
	if gap < 1 {
		return title + "\n" + button
	}
	return title + strings.Repeat(" ", gap) + button
}

// RenderInput wraps the prompt editor and the generate button. spinner is
// shown in front of the busy label.
func RenderInput(editor string, s models.Session, spinner string, width int) string {
	p := styles.For(s.Theme)
	var b strings.Builder

	b.WriteString(styles.InputStyle(p, width).Render(editor))
	b.WriteString("\n")

	label := GenerateLabel
	if s.Busy {
		label = spinner + " " + GeneratingLabel
	}
	b.WriteString(styles.ButtonStyle(p, s.Busy).Render(label))

	if s.Attached != nil {
		b.WriteString("\n")
		b.WriteString(styles.AttachmentStyle(p).Render("📂 " + s.Attached.Name + " uploaded!"))
	}
	return b.String()
}

func RenderPicker(picker string, currentDir string, theme models.Theme) string {
	p := styles.For(theme)
	header := styles.HeadingStyle(p).Render("Attach a file ("+AttachHint+")") + "\n" +
		styles.PlaceholderStyle(p).Render(currentDir)
	return styles.PickerStyle(p).Render(header + "\n" + picker)
}
