package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"github.com/Rorical/RoriGen/internal/logger"
)

// Writer copies text to the system clipboard and falls back to an OSC 52
// escape sequence, which most terminals (including over SSH) honour.
type Writer struct {
	system      func(string) error
	unsupported bool
	terminal    io.Writer
}

func New() *Writer {
	return &Writer{
		system:      clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
		terminal:    os.Stderr,
	}
}

func (w *Writer) WriteAll(text string) error {
	if !w.unsupported && w.system != nil {
		err := w.system(text)
		if err == nil {
			return nil
		}
		logger.Warnf("system clipboard unavailable, using OSC 52: %v", err)
	}

	if w.terminal == nil {
		return fmt.Errorf("no clipboard available")
	}
	if _, err := osc52.New(text).WriteTo(w.terminal); err != nil {
		return fmt.Errorf("failed to write OSC 52 sequence: %w", err)
	}
	return nil
}
