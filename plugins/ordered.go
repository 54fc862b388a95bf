package plugins

import (
	"regexp"
	"strconv"

	"github.com/iw2rmb/mdpane/command"
)

var (
	numberPrefixRE = regexp.MustCompile(`^(\d+)\.\s+`)
	numberEmptyRE  = regexp.MustCompile(`^(\s*)\d+\.\s*$`)
	numberItemRE   = regexp.MustCompile(`^(\s*)(\d+)\.\s+`)
	numberLineRE   = regexp.MustCompile(`^(\s*)\d+\.`)
	numberOnlyRE   = regexp.MustCompile(`^(\s*)\d+\. $`)
)

// RegisterOrderedList installs the "1. " list plugin at low priority.
func RegisterOrderedList(h Host) (unregister func()) {
	r := h.Commands()
	return command.Merge(
		command.Register(r, InsertOrderedList, command.PriorityLow, func(struct{}) (bool, error) {
			return onParagraph(h, "ordered-list/toggle", toggleNumber)
		}),
		command.Register(r, KeyEnter, command.PriorityLow, func(struct{}) (bool, error) {
			return onParagraph(h, "ordered-list/enter", enterNumber)
		}),
		command.Register(r, KeyTab, command.PriorityLow, func(struct{}) (bool, error) {
			return onParagraph(h, "ordered-list/tab", func(p paragraph) (bool, error) {
				return indentList(p, numberLineRE)
			})
		}),
		command.Register(r, KeyShiftTab, command.PriorityLow, func(struct{}) (bool, error) {
			return onParagraph(h, "ordered-list/shift-tab", func(p paragraph) (bool, error) {
				return dedentList(p, numberLineRE)
			})
		}),
		command.Register(r, KeyBackspace, command.PriorityLow, func(struct{}) (bool, error) {
			return onParagraph(h, "ordered-list/backspace", func(p paragraph) (bool, error) {
				return clearMarker(p, numberOnlyRE)
			})
		}),
	)
}

func toggleNumber(p paragraph) (bool, error) {
	if m := numberPrefixRE.FindString(p.text); m != "" {
		return true, p.replace(p.text[len(m):])
	}
	return true, p.replace("1. " + p.text)
}

// enterNumber continues a numbered list with the previous number plus one.
// Numbers elsewhere in the list are never rewritten.
func enterNumber(p paragraph) (bool, error) {
	if m := numberEmptyRE.FindStringSubmatch(p.text); m != nil {
		indent := m[1]
		if len(indent) >= indentWidth {
			return true, p.replace(indent[indentWidth:] + p.text[len(indent):])
		}
		return true, p.replace("")
	}
	m := numberItemRE.FindStringSubmatch(p.text)
	if m == nil || p.caretByte() < len(m[0]) {
		return false, nil
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return false, nil
	}
	return true, p.splitWithMarker(m[1] + strconv.Itoa(n+1) + ". ")
}
