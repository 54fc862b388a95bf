package plugins

import (
	"regexp"

	"github.com/iw2rmb/mdpane/command"
)

var (
	fenceRE    = regexp.MustCompile("(?s)^```(\\w*)\n(.*?)\n```$")
	languageRE = regexp.MustCompile(`^\w*$`)
)

// Languages offered by the code block selector. DefaultLanguage is
// preselected.
var Languages = []string{
	"c", "clike", "cpp", "css", "html", "java", "javascript", "markdown",
	"objectivec", "plaintext", "powershell", "python", "rust", "sql",
	"swift", "typescript", "xml",
}

const DefaultLanguage = "javascript"

// RegisterCodeBlock installs the fenced code block toggle at low priority.
func RegisterCodeBlock(h Host) (unregister func()) {
	return command.Register(h.Commands(), InsertCodeBlock, command.PriorityLow, func(language string) (bool, error) {
		return onParagraph(h, "code-block/toggle", func(p paragraph) (bool, error) {
			return true, p.replace(ToggleFence(p.text, language))
		})
	})
}

// ToggleFence wraps text in a fenced code block tagged with language, or
// returns the inner text when text already is one. A language that is not
// a single word is dropped so the fence can be recognised again.
func ToggleFence(text, language string) string {
	if m := fenceRE.FindStringSubmatch(text); m != nil {
		return m[2]
	}
	if !languageRE.MatchString(language) {
		language = ""
	}
	return "```" + language + "\n" + text + "\n```"
}
