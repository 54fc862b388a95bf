package editor

import "github.com/iw2rmb/mdpane/buffer"

// ChangeEvent is passed to Config.OnChange after every committed buffer
// transaction.
type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}
	TextChanged bool

	// Source tells undo/redo apart from local edits. Tag names the plugin
	// edit that produced the change, e.g. "checklist/click", or is empty.
	Source buffer.ChangeSource
	Tag    string

	// Full Markdown text; hosts can diff if needed.
	Text string
}

func buildChangeEvent(b *buffer.Buffer, ch buffer.Change) ChangeEvent {
	ev := ChangeEvent{
		Version:     ch.VersionAfter,
		Cursor:      b.Cursor(),
		TextChanged: ch.TextChanged,
		Source:      ch.Source,
		Tag:         ch.Tag,
		Text:        b.Text(),
	}
	if r, ok := b.SelectedRange(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
