package editor

// Clipboard backs copy, cut and paste in the Markdown pane.
//
// A failed write leaves the buffer untouched on cut; a failed read pastes
// nothing. Both are logged, never shown as a crash.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
