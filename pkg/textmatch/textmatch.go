// Package textmatch provides whole-word literal matching helpers.
//
// A whole-word match is bounded by non-alphanumeric characters or text
// edges, so a literal never matches inside a longer alphanumeric run.
// Brand and quantity removal share these helpers so that both call sites
// escape and match identically.
package textmatch

import (
	"regexp"
	"strings"
)

// WholeWord compiles a case-insensitive whole-word pattern for a literal.
func WholeWord(literal string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(literal) + `\b`)
}

// ContainsWord reports whether literal occurs in s as a whole word,
// case-insensitively.
func ContainsWord(s, literal string) bool {
	return WholeWord(literal).MatchString(s)
}

// DeleteWord removes every whole-word, case-insensitive occurrence of
// literal from s. Surrounding whitespace is left for the caller to collapse.
func DeleteWord(s, literal string) string {
	return WholeWord(literal).ReplaceAllString(s, "")
}

// CollapseWhitespace replaces runs of whitespace with a single space and
// trims both ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
