package plugins

import (
	"regexp"
	"strings"

	"github.com/iw2rmb/mdpane/command"
)

var (
	checkPrefixRE = regexp.MustCompile(`^- \[[ x]\] ?`)
	checkItemRE   = regexp.MustCompile(`^- \[[ x]\]\s*`)
	checkOnlyRE   = regexp.MustCompile(`^(\s*)- \[[ x]\] $`)
	checkEmptyRE  = regexp.MustCompile(`^- \[[ x]\] ?$`)
)

// RegisterCheckList installs the "- [ ] " plugin at high priority.
//
// Enter only continues or exits unindented checklists; an indented empty
// item is left to the default newline.
func RegisterCheckList(h Host) (unregister func()) {
	r := h.Commands()
	return command.Merge(
		command.Register(r, InsertCheckList, command.PriorityHigh, func(struct{}) (bool, error) {
			return onParagraph(h, "checklist/toggle", toggleCheck)
		}),
		command.Register(r, KeyEnter, command.PriorityHigh, func(struct{}) (bool, error) {
			return onParagraph(h, "checklist/enter", enterCheck)
		}),
		command.Register(r, KeyBackspace, command.PriorityHigh, func(struct{}) (bool, error) {
			return onParagraph(h, "checklist/backspace", func(p paragraph) (bool, error) {
				return clearMarker(p, checkOnlyRE)
			})
		}),
	)
}

func toggleCheck(p paragraph) (bool, error) {
	if m := checkPrefixRE.FindString(p.text); m != "" {
		return true, p.replace(p.text[len(m):])
	}
	return true, p.replace("- [ ] " + p.text)
}

func enterCheck(p paragraph) (bool, error) {
	if checkEmptyRE.MatchString(p.text) {
		return true, p.replace("")
	}
	m := checkItemRE.FindString(p.text)
	if m == "" || strings.HasPrefix(p.text, " ") || p.caretByte() < len(m) {
		return false, nil
	}
	return true, p.splitWithMarker("- [ ] ")
}
