package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rorical/RoriGen/internal/models"
)

func TestRenderResponsePlaceholders(t *testing.T) {
	idle := RenderResponse(models.Session{}, 80)
	assert.Contains(t, idle, EmptyPlaceholder)
	assert.NotContains(t, idle, ExportLabel)
	assert.NotContains(t, idle, CopyLabel)

	busy := RenderResponse(models.Session{Busy: true}, 80)
	assert.Contains(t, busy, WaitingPlaceholder)
}

func TestRenderResponseWithText(t *testing.T) {
	out := RenderResponse(models.Session{Response: "hi there"}, 80)
	assert.Contains(t, out, "hi there")
	assert.Contains(t, out, CopyLabel)
	assert.Contains(t, out, ExportLabel)

	copied := RenderResponse(models.Session{Response: "hi there", Copied: true}, 80)
	assert.Contains(t, copied, CopiedLabel)
}

func TestRenderInputLabels(t *testing.T) {
	assert.Contains(t, RenderInput("prompt", models.Session{}, "*", 80), GenerateLabel)
	assert.Contains(t, RenderInput("prompt", models.Session{Busy: true}, "*", 80), GeneratingLabel)

	h := models.NewFileHandle("/tmp/notes.txt")
	assert.Contains(t, RenderInput("", models.Session{Attached: &h}, "*", 80), "notes.txt uploaded!")
}

func TestThemeLabel(t *testing.T) {
	assert.Equal(t, DarkModeLabel, ThemeLabel(models.Light))
	assert.Equal(t, LightModeLabel, ThemeLabel(models.Dark))
	assert.Contains(t, RenderHeader(models.Dark, 100), LightModeLabel)
	assert.Contains(t, RenderHeader(models.Light, 10), Title)
}
