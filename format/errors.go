package format

import "github.com/pkg/errors"

// Validation failures reported to the toolbar.
var (
	ErrEmptySelection = errors.New("select some text first")
	ErrBlankText      = errors.New("selected text is blank")
	ErrEmptyURL       = errors.New("link URL is empty")
)
