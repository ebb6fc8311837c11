package models

type Focus int

const (
	FocusPrompt Focus = iota
	FocusPicker
)

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Status   string // Status bar text
	Width    int    // Terminal width
	Height   int    // Terminal height
	Focus    Focus  // Which pane receives keys
	ShowHelp bool   // Full key help instead of the short line
}
