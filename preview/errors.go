package preview

import "github.com/pkg/errors"

var (
	// ErrStaleItem reports a click on a checklist item from an earlier
	// render generation, or whose source line no longer holds a checkbox.
	ErrStaleItem = errors.New("preview: checklist item is stale")

	// ErrUnknownItem reports a click on an item that was never bound.
	ErrUnknownItem = errors.New("preview: unknown checklist item")
)
