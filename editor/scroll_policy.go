package editor

// ScrollPolicy controls whether the Markdown pane may scroll away from the
// cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual allows mouse wheel scrolling even when the cursor
	// does not move.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly keeps vertical movement cursor-driven. Wheel
	// events over the Markdown pane are ignored.
	ScrollFollowCursorOnly
)
