package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	return strings.Join(clusters, "")
}

// LastClusterLen returns the rune length of the final grapheme cluster.
func LastClusterLen(text []rune) int {
	if len(text) == 0 {
		return 0
	}
	clusters := Split(string(text))
	return len([]rune(clusters[len(clusters)-1]))
}

// FirstClusterLen returns the rune length of the first grapheme cluster.
func FirstClusterLen(text []rune) int {
	if len(text) == 0 {
		return 0
	}
	g := uniseg.NewGraphemes(string(text))
	g.Next()
	return len(g.Runes())
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func IsSpaceRune(r rune) bool { return unicode.IsSpace(r) }

// Width returns the terminal cell width of one cluster. Tabs expand to the
// next multiple of tabWidth counted from col.
func Width(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - col%tabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}
