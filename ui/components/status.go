package components

import (
	"github.com/Rorical/RoriGen/internal/models"
	"github.com/Rorical/RoriGen/ui/styles"
)

func RenderStatus(status string, theme models.Theme, width int) string {
	return styles.StatusStyle(styles.For(theme), width).Render(status)
}

func RenderHelp(help string, theme models.Theme) string {
	return styles.HelpStyle(styles.For(theme)).Render(help)
}
