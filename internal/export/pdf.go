package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/Rorical/RoriGen/internal/models"
)

const (
	FileName = "AI_Response.pdf"

	// Image placement on the page, in millimetres.
	imageX = 10.0
	imageY = 10.0
	imageW = 180.0
	imageH = 160.0

	columns   = 80
	padding   = 16
	minHeight = 100
)

type palette struct {
	background color.Color
	foreground color.Color
}

var palettes = map[models.Theme]palette{
	models.Light: {background: color.White, foreground: color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}},
	models.Dark:  {background: color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}, foreground: color.White},
}

// PDFExporter writes the response as a raster snapshot on a single page.
type PDFExporter struct {
	Dir string
	// FontPath names an extra TrueType/OpenType file tried before the
	// built-in face, for scripts such as CJK or emoji.
	FontPath string
}

func NewPDFExporter(dir, fontPath string) *PDFExporter {
	return &PDFExporter{Dir: dir, FontPath: fontPath}
}

func (e *PDFExporter) Export(text string, theme models.Theme) (string, error) {
	face, err := LoadFace(e.FontPath)
	if err != nil {
		return "", err
	}
	defer face.Close()

	var buf bytes.Buffer
	if err := png.Encode(&buf, Rasterize(text, theme, face)); err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(e.Dir, FileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("response", opts, &buf)
	pdf.ImageOptions("response", imageX, imageY, imageW, imageH, false, opts, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}
	return path, nil
}

// Rasterize draws the response box the way the terminal shows it: wrapped
// text on the theme background.
func Rasterize(text string, theme models.Theme, face font.Face) *image.RGBA {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[models.Light]
	}

	lines := wrap(text, columns)

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()

	textWidth := font.MeasureString(face, strings.Repeat("M", columns)).Ceil()
	for _, line := range lines {
		textWidth = max(textWidth, font.MeasureString(face, line).Ceil())
	}
	width := textWidth + 2*padding
	height := max(len(lines)*lineHeight+2*padding, minHeight)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(p.background), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(p.foreground),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(padding, padding+ascent+i*lineHeight)
		d.DrawString(line)
	}
	return img
}

// wrap breaks text on newlines, then on word boundaries so no line exceeds
// width characters. Words longer than width are split.
func wrap(text string, width int) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		var line []rune
		for _, w := range words {
			word := []rune(w)
			for len(word) > width {
				if len(line) > 0 {
					out = append(out, string(line))
					line = nil
				}
				out = append(out, string(word[:width]))
				word = word[width:]
			}
			switch {
			case len(line) == 0:
				line = word
			case len(line)+1+len(word) <= width:
				line = append(append(line, ' '), word...)
			default:
				out = append(out, string(line))
				line = word
			}
		}
		if len(line) > 0 {
			out = append(out, string(line))
		}
	}
	return out
}
