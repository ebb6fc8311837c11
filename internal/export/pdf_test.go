package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/Rorical/RoriGen/internal/models"
)

func TestExportWritesSinglePagePDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	ex := NewPDFExporter(dir, "")

	path, err := ex.Export("hi there\nsecond line", models.Light)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
	assert.Contains(t, string(data), "/Type /Page")
	assert.Equal(t, 1, strings.Count(string(data), "/Type /Page\n"))
}

func TestRasterizeUsesThemeBackground(t *testing.T) {
	light := Rasterize("x", models.Light, defaultFace())
	dark := Rasterize("x", models.Dark, defaultFace())

	r, g, b, _ := light.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r&g&b)

	r, g, b, _ = dark.At(0, 0).RGBA()
	assert.NotEqual(t, uint32(0xffff), r&g&b)
}

func TestRasterizeHeightGrowsWithText(t *testing.T) {
	short := Rasterize("one line", models.Light, defaultFace())
	assert.Equal(t, minHeight, short.Bounds().Dy())

	long := Rasterize(strings.Repeat("line\n", 20), models.Light, defaultFace())
	assert.Greater(t, long.Bounds().Dy(), minHeight)
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"hello world"}, wrap("hello world", 20))
	assert.Equal(t, []string{"hello", "world"}, wrap("hello world", 8))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, wrap("abcdefghij", 4))
	assert.Equal(t, []string{"a", "", "b"}, wrap("a\n\nb", 10))
	assert.Equal(t, []string{"héllo", "wörld"}, wrap("héllo wörld", 6))
}

func TestDefaultFaceCoversAccentedText(t *testing.T) {
	face, err := LoadFace("")
	require.NoError(t, err)
	defer face.Close()

	ff, ok := face.(fallbackFace)
	require.True(t, ok)
	for _, r := range "aéöñßçΩЖ" {
		assert.True(t, ff.Covers(r), string(r))
	}
	assert.False(t, ff.Covers('中'))
}

func TestRasterizeDrawsNonASCIIGlyphs(t *testing.T) {
	face := defaultFace()

	accented := Rasterize("é", models.Light, face)
	plain := Rasterize("e", models.Light, face)
	missing := Rasterize("中", models.Light, face)

	require.Equal(t, accented.Bounds(), missing.Bounds())
	assert.NotEqual(t, accented.Pix, plain.Pix, "the accent is drawn")
	assert.NotEqual(t, accented.Pix, missing.Pix, "é is not the missing-glyph box")

	inked := 0
	for i := 0; i < len(accented.Pix); i += 4 {
		if accented.Pix[i] < 0x80 {
			inked++
		}
	}
	assert.Greater(t, inked, 0)
}

func TestLoadFaceWithFontFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.ttf")
	require.NoError(t, os.WriteFile(path, gomono.TTF, 0600))

	face, err := LoadFace(path)
	require.NoError(t, err)
	defer face.Close()
	assert.True(t, face.(fallbackFace).Covers('é'))

	ex := NewPDFExporter(t.TempDir(), path)
	_, err = ex.Export("café ✅", models.Dark)
	assert.NoError(t, err)
}

func TestLoadFaceErrors(t *testing.T) {
	_, err := LoadFace(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)

	junk := filepath.Join(t.TempDir(), "junk.ttf")
	require.NoError(t, os.WriteFile(junk, []byte("not a font"), 0600))
	_, err = LoadFace(junk)
	assert.Error(t, err)
}
