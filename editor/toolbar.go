package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/mdpane/composer"
)

type toolbarItem struct {
	label    string
	button   composer.Button
	language bool
	x0, x1   int
}

// toolbarLayout places one item per toolbar button followed by the code
// block language selector. Items are separated by one cell.
func toolbarLayout(language string) []toolbarItem {
	var items []toolbarItem
	x := 0
	add := func(it toolbarItem) {
		w := lipgloss.Width(it.label)
		it.x0, it.x1 = x, x+w
		items = append(items, it)
		x += w + 1
	}
	for _, b := range composer.Buttons() {
		add(toolbarItem{label: " " + b.String() + " ", button: b})
	}
	add(toolbarItem{label: "‹" + language + "›", language: true})
	return items
}

func (m Model) toolbarView() string {
	st := m.cfg.Style
	parts := make([]string, 0, len(composer.Buttons())+1)
	for _, it := range toolbarLayout(m.comp.Language()) {
		if it.language {
			parts = append(parts, st.Language.Render(it.label))
			continue
		}
		parts = append(parts, st.ToolbarButton.Render(it.label))
	}
	line := ansi.Truncate(strings.Join(parts, st.Toolbar.Render(" ")), m.width, "")
	if pad := m.width - ansi.StringWidth(line); pad > 0 {
		line += st.Toolbar.Render(strings.Repeat(" ", pad))
	}
	return line
}

func (m *Model) clickToolbar(x int) tea.Cmd {
	for _, it := range toolbarLayout(m.comp.Language()) {
		if x < it.x0 || x >= it.x1 {
			continue
		}
		if it.language {
			m.cycleLanguage(1)
			return nil
		}
		return m.press(it.button)
	}
	return nil
}

func (m Model) statusView() string {
	if m.prompting {
		return ansi.Truncate(m.prompt.View(), m.width, "")
	}
	st := m.cfg.Style
	text, style := m.status, st.Status
	if m.statusErr {
		style = st.StatusError
	}
	if text == "" {
		text = "ctrl+o switch pane · ctrl+k link · alt+n language"
	}
	return style.Render(ansi.Truncate(text, m.width, "…"))
}
