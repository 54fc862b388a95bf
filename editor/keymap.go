package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks). ctrl+i
// arrives as tab, so italic lives on alt+i.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Tab, ShiftTab     key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding

	Bold, Italic, Strikethrough, Code, Underline key.Binding
	Quote, Link                                  key.Binding
	UnorderedList, OrderedList, CheckList        key.Binding
	CodeBlock                                    key.Binding
	NextLanguage, PrevLanguage                   key.Binding

	SwitchPane key.Binding
	ToggleItem key.Binding
	Cancel     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		ShiftTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "dedent")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Bold:          key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic:        key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Strikethrough: key.NewBinding(key.WithKeys("alt+s", "ctrl+shift+s"), key.WithHelp("alt+s", "strikethrough")),
		Code:          key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "code")),
		Underline:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "underline")),
		Quote:         key.NewBinding(key.WithKeys("alt+q"), key.WithHelp("alt+q", "quote")),
		Link:          key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "link")),
		UnorderedList: key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "list")),
		OrderedList:   key.NewBinding(key.WithKeys("alt+o"), key.WithHelp("alt+o", "numbered list")),
		CheckList:     key.NewBinding(key.WithKeys("alt+x"), key.WithHelp("alt+x", "checklist")),
		CodeBlock:     key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "code block")),
		NextLanguage:  key.NewBinding(key.WithKeys("alt+n"), key.WithHelp("alt+n", "next language")),
		PrevLanguage:  key.NewBinding(key.WithKeys("alt+p"), key.WithHelp("alt+p", "previous language")),

		SwitchPane: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "switch pane")),
		ToggleItem: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle item")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
