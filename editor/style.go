package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Divider lipgloss.Style

	Toolbar       lipgloss.Style
	ToolbarButton lipgloss.Style
	Language      lipgloss.Style

	PreviewSelected lipgloss.Style

	Status      lipgloss.Style
	StatusError lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:          gutter,
		LineNum:         gutter,
		LineNumActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:            lipgloss.NewStyle(),
		Selection:       lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:          lipgloss.NewStyle().Reverse(true),
		Divider:         gutter,
		Toolbar:         lipgloss.NewStyle().Background(lipgloss.Color("236")),
		ToolbarButton:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		Language:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		PreviewSelected: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Status:          gutter,
		StatusError:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
