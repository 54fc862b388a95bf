package composer

import (
	"github.com/pkg/errors"

	"github.com/iw2rmb/mdpane/command"
	"github.com/iw2rmb/mdpane/format"
	"github.com/iw2rmb/mdpane/plugins"
)

// Button is a toolbar button.
type Button int

const (
	ButtonBold Button = iota
	ButtonItalic
	ButtonStrikethrough
	ButtonCode
	ButtonUnderline
	ButtonQuote
	ButtonLink
	ButtonUnorderedList
	ButtonOrderedList
	ButtonCheckList
	ButtonCodeBlock
)

var buttonLabels = [...]string{
	ButtonBold:          "bold",
	ButtonItalic:        "italic",
	ButtonStrikethrough: "strike",
	ButtonCode:          "code",
	ButtonUnderline:     "underline",
	ButtonQuote:         "quote",
	ButtonLink:          "link",
	ButtonUnorderedList: "list",
	ButtonOrderedList:   "numbered",
	ButtonCheckList:     "checklist",
	ButtonCodeBlock:     "code block",
}

func (b Button) String() string {
	if b >= 0 && int(b) < len(buttonLabels) {
		return buttonLabels[b]
	}
	return "unknown"
}

// Buttons returns the toolbar in display order.
func Buttons() []Button {
	out := make([]Button, 0, len(buttonLabels))
	for b := range buttonLabels {
		out = append(out, Button(b))
	}
	return out
}

var (
	ErrUnknownLanguage = errors.New("composer: unknown code block language")
	ErrUnknownButton   = errors.New("composer: unknown button")
	// ErrLinkNeedsURL is returned by Press(ButtonLink); links go through Link.
	ErrLinkNeedsURL = errors.New("composer: link button needs a URL")
)

func (c *Composer) Language() string { return c.language }

// SetLanguage selects the language passed to the code block command.
func (c *Composer) SetLanguage(lang string) error {
	for _, l := range plugins.Languages {
		if l == lang {
			c.language = lang
			return nil
		}
	}
	return errors.Wrapf(ErrUnknownLanguage, "%q", lang)
}

// Press dispatches the command behind b. The selected language is passed
// to the code block command.
func (c *Composer) Press(b Button) (bool, error) {
	switch b {
	case ButtonBold:
		return c.formatText(format.Bold)
	case ButtonItalic:
		return c.formatText(format.Italic)
	case ButtonStrikethrough:
		return c.formatText(format.Strikethrough)
	case ButtonCode:
		return c.formatText(format.Code)
	case ButtonUnderline:
		return c.formatText(format.Underline)
	case ButtonQuote:
		return command.Dispatch(c.reg, plugins.FormatQuote, struct{}{})
	case ButtonLink:
		return false, ErrLinkNeedsURL
	case ButtonUnorderedList:
		return command.Dispatch(c.reg, plugins.InsertUnorderedList, struct{}{})
	case ButtonOrderedList:
		return command.Dispatch(c.reg, plugins.InsertOrderedList, struct{}{})
	case ButtonCheckList:
		return command.Dispatch(c.reg, plugins.InsertCheckList, struct{}{})
	case ButtonCodeBlock:
		return command.Dispatch(c.reg, plugins.InsertCodeBlock, c.language)
	default:
		return false, errors.Wrapf(ErrUnknownButton, "%d", int(b))
	}
}

// Link turns the selection into a Markdown link to url.
func (c *Composer) Link(url string) (bool, error) {
	return command.Dispatch(c.reg, plugins.ToggleLink, plugins.LinkPayload{URL: url})
}

func (c *Composer) formatText(kind format.Kind) (bool, error) {
	return command.Dispatch(c.reg, plugins.FormatText, kind)
}
