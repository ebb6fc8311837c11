package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriGen/internal/models"
)

// Palette holds the colour tokens of one theme.
type Palette struct {
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Surface    lipgloss.Color
	Button     lipgloss.Color
	ButtonText lipgloss.Color
	Disabled   lipgloss.Color
	Export     lipgloss.Color
	StatusBG   lipgloss.Color
}

var (
	light = Palette{
		Text:       lipgloss.Color("235"),
		Muted:      lipgloss.Color("245"),
		Accent:     lipgloss.Color("27"),
		Border:     lipgloss.Color("250"),
		Success:    lipgloss.Color("28"),
		Surface:    lipgloss.Color("255"),
		Button:     lipgloss.Color("27"),
		ButtonText: lipgloss.Color("231"),
		Disabled:   lipgloss.Color("245"),
		Export:     lipgloss.Color("28"),
		StatusBG:   lipgloss.Color("253"),
	}
	dark = Palette{
		Text:       lipgloss.Color("255"),
		Muted:      lipgloss.Color("243"),
		Accent:     lipgloss.Color("39"),
		Border:     lipgloss.Color("240"),
		Success:    lipgloss.Color("77"),
		Surface:    lipgloss.Color("236"),
		Button:     lipgloss.Color("33"),
		ButtonText: lipgloss.Color("231"),
		Disabled:   lipgloss.Color("241"),
		Export:     lipgloss.Color("34"),
		StatusBG:   lipgloss.Color("235"),
	}
)

func For(theme models.Theme) Palette {
	if theme == models.Dark {
		return dark
	}
	return light
}

func TitleStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true).
		Padding(0, 1)
}

func ThemeButtonStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.StatusBG).
		Padding(0, 1)
}

func InputStyle(p Palette, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1).
		Width(max(width-4, 10))
}

func ButtonStyle(p Palette, disabled bool) lipgloss.Style {
	bg := p.Button
	if disabled {
		bg = p.Disabled
	}
	return lipgloss.NewStyle().
		Foreground(p.ButtonText).
		Background(bg).
		Bold(true).
		Padding(0, 2).
		MarginTop(1)
}

func ExportButtonStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.ButtonText).
		Background(p.Export).
		Padding(0, 2)
}

func AttachmentStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Success).
		MarginTop(1)
}

func HeadingStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true).
		MarginTop(1)
}

func ResponseBoxStyle(p Palette, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Foreground(p.Text).
		Padding(1, 2).
		Width(max(width-4, 10))
}

func PlaceholderStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)
}

func CopyLabelStyle(p Palette, copied bool) lipgloss.Style {
	fg := p.Muted
	if copied {
		fg = p.Success
	}
	return lipgloss.NewStyle().Foreground(fg)
}

func CodeStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Text).
		MarginLeft(2)
}

func StatusStyle(p Palette, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.StatusBG).
		Padding(0, 1).
		Width(width)
}

func HelpStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)
}

func PickerStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1)
}
