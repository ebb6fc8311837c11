package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAllUsesSystemClipboard(t *testing.T) {
	var got string
	var term bytes.Buffer
	w := &Writer{
		system:   func(s string) error { got = s; return nil },
		terminal: &term,
	}

	require.NoError(t, w.WriteAll("hi there"))
	assert.Equal(t, "hi there", got)
	assert.Zero(t, term.Len())
}

func TestWriteAllFallsBackToOSC52(t *testing.T) {
	var term bytes.Buffer
	w := &Writer{
		system:   func(string) error { return errors.New("xclip not found") },
		terminal: &term,
	}

	require.NoError(t, w.WriteAll("hi there"))
	assert.Contains(t, term.String(), base64.StdEncoding.EncodeToString([]byte("hi there")))
	assert.Contains(t, term.String(), "\x1b]52;")
}

func TestWriteAllUnsupportedPlatform(t *testing.T) {
	var term bytes.Buffer
	called := false
	w := &Writer{
		system:      func(string) error { called = true; return nil },
		unsupported: true,
		terminal:    &term,
	}

	require.NoError(t, w.WriteAll("x"))
	assert.False(t, called)
	assert.NotZero(t, term.Len())
}

func TestWriteAllNoTarget(t *testing.T) {
	w := &Writer{unsupported: true}
	assert.Error(t, w.WriteAll("x"))
}
