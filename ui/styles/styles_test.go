package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rorical/RoriGen/internal/models"
)

func TestThemeButtonFollowsPalette(t *testing.T) {
	light := ThemeButtonStyle(For(models.Light))
	dark := ThemeButtonStyle(For(models.Dark))

	assert.Equal(t, For(models.Light).Text, light.GetForeground())
	assert.Equal(t, For(models.Light).StatusBG, light.GetBackground())
	assert.Equal(t, For(models.Dark).Text, dark.GetForeground())
	assert.NotEqual(t, light.GetBackground(), dark.GetBackground())
}
