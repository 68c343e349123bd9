package normalizer

import (
	"regexp"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"relabel/pkg/textmatch"
)

// disallowedRe matches every character that may not survive cleaning.
// Comma, period, slash, plus and hyphen are kept because quantity tokens
// need them; everything else becomes a space.
var disallowedRe = regexp.MustCompile(`[^A-Za-z0-9\s,./+-]`)

// stripMarks decomposes accented letters and drops the combining marks.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// TextNormalizer cleans raw label text into the restricted character set
// the rest of the pipeline operates on. It never fails; empty input yields
// empty output. Case is not changed at this stage.
type TextNormalizer struct{}

// NewTextNormalizer creates a new text normalizer.
func NewTextNormalizer() *TextNormalizer {
	return &TextNormalizer{}
}

// Clean strips diacritics, replaces disallowed characters with spaces and
// collapses whitespace.
func (n *TextNormalizer) Clean(text string) string {
	cleaned, _, err := transform.String(stripMarks, text)
	if err != nil {
		// Malformed UTF-8 passes through; the character filter below
		// replaces anything unexpected with a space.
		cleaned = text
	}

	cleaned = disallowedRe.ReplaceAllString(cleaned, " ")

	return textmatch.CollapseWhitespace(cleaned)
}
