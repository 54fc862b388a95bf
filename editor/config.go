package editor

import (
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Forwarded to buffer.Options.
	HistoryLimit int
	// Code block language preselected in the toolbar.
	Language string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int
	Highlighter  Highlighter

	// PreviewRenderer draws the preview pane. Nil means
	// lipgloss.DefaultRenderer().
	PreviewRenderer *lipgloss.Renderer
	// Theme is the chroma style for preview code blocks.
	Theme string

	KeyMap       KeyMap
	Clipboard    Clipboard
	ReadOnly     bool
	ScrollPolicy ScrollPolicy

	Logger *zap.Logger

	// OnChange fires after every buffer change, including cursor moves.
	OnChange func(ChangeEvent)
}

// DefaultConfig returns a Config with the default key map, styles and
// Markdown highlighting.
func DefaultConfig() Config {
	return Config{
		Style:       DefaultStyle(),
		KeyMap:      DefaultKeyMap(),
		Highlighter: NewMarkdownHighlighter(),
		TabWidth:    4,
	}
}
