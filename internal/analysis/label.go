package analysis

import (
	"regexp"
	"strings"
)

var innerParens = regexp.MustCompile(`\([^()]*\)`)

// DisplayLabel strips chemical formulas such as "(P2O5)" from a nutrient
// label. Nested groups are removed from the inside out and the remaining
// words are re-joined with single spaces.
func DisplayLabel(label string) string {
	s := label
	for innerParens.MatchString(s) {
		s = innerParens.ReplaceAllString(s, " ")
	}
	return strings.Join(strings.Fields(s), " ")
}
