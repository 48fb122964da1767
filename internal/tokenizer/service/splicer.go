package service

import (
	"sort"
	"strings"
)

// Replacement substitutes the byte range [Start, End) of the original
// content with Text.
type Replacement struct {
	Start int
	End   int
	Text  string
}

// Splice applies replacements by their recorded byte ranges.
//
// Ranges must not overlap. Substitution never searches for literal text, so
// repeated substrings elsewhere in the content are untouched and earlier
// replacements cannot shift the offsets of later ones.
func Splice(original string, replacements []Replacement) string {
	if len(replacements) == 0 {
		return original
	}

	ordered := make([]Replacement, len(replacements))
	copy(ordered, replacements)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	var b strings.Builder
	cursor := 0
	for _, r := range ordered {
		b.WriteString(original[cursor:r.Start])
		b.WriteString(r.Text)
		cursor = r.End
	}
	b.WriteString(original[cursor:])
	return b.String()
}
