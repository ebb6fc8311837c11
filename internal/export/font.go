package export

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const fontSize = 13

// LoadFace builds the export face. The font file at path, when given, comes
// first; Go Regular covers Latin, Greek and Cyrillic after it.
func LoadFace(path string) (font.Face, error) {
	var faces []coveredFace
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
		face, err := parseFace(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
		}
		faces = append(faces, face)
	}
	faces = append(faces, defaultFace())
	return fallbackFace(faces), nil
}

// defaultFace returns Go Regular, or the ASCII bitmap face if it cannot be
// parsed. Faces keep scratch buffers, so each call builds a new one.
func defaultFace() coveredFace {
	face, err := parseFace(goregular.TTF)
	if err != nil {
		return coveredFace{Face: basicfont.Face7x13}
	}
	return face
}

// coveredFace knows which runes its font really has; opentype faces report
// the .notdef box as a valid glyph.
type coveredFace struct {
	font.Face
	src *sfnt.Font
}

func (c coveredFace) Has(r rune) bool {
	if c.src == nil {
		_, ok := c.Face.GlyphAdvance(r)
		return ok
	}
	idx, err := c.src.GlyphIndex(nil, r)
	return err == nil && idx != 0
}

func parseFace(data []byte) (coveredFace, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return coveredFace{}, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return coveredFace{}, err
	}
	return coveredFace{Face: face, src: f}, nil
}

// fallbackFace draws each rune with the first face that has a glyph for it.
// Metrics come from the first face.
type fallbackFace []coveredFace

func (ff fallbackFace) pick(r rune) font.Face {
	for _, f := range ff {
		if f.Has(r) {
			return f.Face
		}
	}
	return ff[len(ff)-1].Face
}

// Covers reports whether some face in the chain has a glyph for r.
func (ff fallbackFace) Covers(r rune) bool {
	for _, f := range ff {
		if f.Has(r) {
			return true
		}
	}
	return false
}

func (ff fallbackFace) Close() error {
	for _, f := range ff {
		f.Close()
	}
	return nil
}

func (ff fallbackFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return ff.pick(r).Glyph(dot, r)
}

func (ff fallbackFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return ff.pick(r).GlyphBounds(r)
}

func (ff fallbackFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return ff.pick(r).GlyphAdvance(r)
}

func (ff fallbackFace) Kern(r0, r1 rune) fixed.Int26_6 {
	a, b := ff.pick(r0), ff.pick(r1)
	if a != b {
		return 0
	}
	return a.Kern(r0, r1)
}

func (ff fallbackFace) Metrics() font.Metrics {
	return ff[0].Face.Metrics()
}
