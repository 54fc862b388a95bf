package plugins

import (
	"regexp"
	"strings"

	"github.com/iw2rmb/mdpane/command"
)

var (
	bulletEmptyRE = regexp.MustCompile(`^(\s*)-\s*$`)
	bulletItemRE  = regexp.MustCompile(`^(\s*)-\s+`)
	bulletLineRE  = regexp.MustCompile(`^(\s*)-`)
	bulletOnlyRE  = regexp.MustCompile(`^(\s*)- $`)
)

// RegisterUnorderedList installs the "- " list plugin at high priority.
func RegisterUnorderedList(h Host) (unregister func()) {
	r := h.Commands()
	return command.Merge(
		command.Register(r, InsertUnorderedList, command.PriorityHigh, func(struct{}) (bool, error) {
			return onParagraph(h, "unordered-list/toggle", toggleBullet)
		}),
		command.Register(r, KeyEnter, command.PriorityHigh, func(struct{}) (bool, error) {
			return onParagraph(h, "unordered-list/enter", enterBullet)
		}),
		command.Register(r, KeyTab, command.PriorityHigh, func(struct{}) (bool, error) {
			return onParagraph(h, "unordered-list/tab", func(p paragraph) (bool, error) {
				return indentList(p, bulletLineRE)
			})
		}),
		command.Register(r, KeyShiftTab, command.PriorityHigh, func(struct{}) (bool, error) {
			return onParagraph(h, "unordered-list/shift-tab", func(p paragraph) (bool, error) {
				return dedentList(p, bulletLineRE)
			})
		}),
		command.Register(r, KeyBackspace, command.PriorityHigh, func(struct{}) (bool, error) {
			return onParagraph(h, "unordered-list/backspace", func(p paragraph) (bool, error) {
				return clearMarker(p, bulletOnlyRE)
			})
		}),
	)
}

func toggleBullet(p paragraph) (bool, error) {
	if strings.HasPrefix(p.text, "- ") {
		return true, p.replace(p.text[2:])
	}
	return true, p.replace("- " + p.text)
}

func enterBullet(p paragraph) (bool, error) {
	// Checklist syntax wins.
	if strings.Contains(p.text, "- [") {
		return false, nil
	}
	if p.text == "-" || p.text == "- " {
		return true, p.replace("")
	}
	if m := bulletEmptyRE.FindStringSubmatch(p.text); m != nil {
		indent := m[1]
		if len(indent) >= indentWidth {
			return true, p.replace(indent[indentWidth:] + "- ")
		}
		return true, p.replace("")
	}
	if m := bulletItemRE.FindStringSubmatch(p.text); m != nil && p.caretByte() >= len(m[0]) {
		return true, p.splitWithMarker(m[1] + "- ")
	}
	return false, nil
}

// indentList moves a list line four spaces to the right.
func indentList(p paragraph, re *regexp.Regexp) (bool, error) {
	if !re.MatchString(p.text) {
		return false, nil
	}
	return true, p.shift(indentWidth)
}

// dedentList moves an indented list line up to four spaces to the left.
func dedentList(p paragraph, re *regexp.Regexp) (bool, error) {
	m := re.FindStringSubmatch(p.text)
	if m == nil || !strings.HasPrefix(m[1], " ") {
		return false, nil
	}
	return true, p.shift(-indentWidth)
}

// clearMarker removes a marker-only line's marker when the caret is at its
// end, keeping the indentation.
func clearMarker(p paragraph, re *regexp.Regexp) (bool, error) {
	if !p.atEnd() {
		return false, nil
	}
	m := re.FindStringSubmatch(p.text)
	if m == nil {
		return false, nil
	}
	return true, p.replace(m[1])
}
