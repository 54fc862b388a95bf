// Package plugins rewrites the focused paragraph into and out of Markdown
// list, checklist and code-fence syntax.
//
// Every plugin acts on the block holding a collapsed caret and reports a
// command as unhandled for range selections, so the next handler (or the
// editor default) runs instead.
package plugins

import (
	"github.com/iw2rmb/mdpane/command"
	"github.com/iw2rmb/mdpane/format"
)

// LinkPayload carries the URL typed into the link prompt.
type LinkPayload struct {
	URL string
}

var (
	FormatText  = command.New[format.Kind]("FORMAT_TEXT")
	ToggleLink  = command.New[LinkPayload]("TOGGLE_LINK")
	FormatQuote = command.New[struct{}]("FORMAT_QUOTE")

	InsertUnorderedList = command.New[struct{}]("INSERT_UNORDERED_LIST")
	InsertOrderedList   = command.New[struct{}]("INSERT_ORDERED_LIST")
	InsertCheckList     = command.New[struct{}]("INSERT_CHECK_LIST")
	InsertCodeBlock     = command.New[string]("INSERT_CODE_BLOCK")

	KeyEnter     = command.New[struct{}]("KEY_ENTER")
	KeyTab       = command.New[struct{}]("KEY_TAB")
	KeyShiftTab  = command.New[struct{}]("KEY_SHIFT_TAB")
	KeyBackspace = command.New[struct{}]("KEY_BACKSPACE")
)
