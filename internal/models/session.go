package models

import (
	"path/filepath"
	"strings"
)

type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

func ParseTheme(s string) Theme {
	if strings.EqualFold(s, "dark") {
		return Dark
	}
	return Light
}

// FileHandle identifies an attached file. Its contents are never read.
type FileHandle struct {
	Name string
	Path string
}

func NewFileHandle(path string) FileHandle {
	return FileHandle{Name: filepath.Base(path), Path: path}
}

// Session is a read-only snapshot of the prompt session.
type Session struct {
	Prompt    string
	Response  string
	Busy      bool
	Copied    bool
	Revealing bool
	Attached  *FileHandle
	Theme     Theme
}

// GenerationResult is the full payload of one generation call.
type GenerationResult struct {
	RequestID uint64
	Text      string
	Err       error
}
