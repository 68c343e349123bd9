package normalizer

import (
	"regexp"
	"strings"

	"relabel/pkg/textmatch"
)

// leftoverSeparatorRe matches separator punctuation left behind in the
// product-name remainder once brand and quantities are removed. Periods,
// slashes, pluses and hyphens survive cleaning only so that quantity
// tokens can be parsed; the final label keeps commas and nothing else.
var leftoverSeparatorRe = regexp.MustCompile(`[./+-]`)

// Assembler removes the recognized brand and quantity tokens from cleaned
// label text and rebuilds the canonical BRAND + PRODUCT + QUANTITIES form.
type Assembler struct{}

// NewAssembler creates a new assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble builds the corrected label. brand may be empty; quantities must
// be in extraction order. The result is uppercase, single-spaced and empty
// only when nothing survives cleaning.
func (a *Assembler) Assemble(cleaned, brand string, quantities []string) string {
	name := cleaned

	if brand != "" {
		name = textmatch.DeleteWord(name, brand)
	}

	for _, token := range quantities {
		name = textmatch.DeleteWord(name, token)

		// Labels may carry the quantity with either decimal separator;
		// remove the swapped variant too.
		if alt := swapDecimalSeparator(token); alt != token {
			name = textmatch.DeleteWord(name, alt)
		}
	}

	name = leftoverSeparatorRe.ReplaceAllString(name, " ")
	name = textmatch.CollapseWhitespace(name)

	parts := make([]string, 0, 2+len(quantities))
	if brand != "" {
		parts = append(parts, brand)
	}

	if name != "" {
		parts = append(parts, name)
	}

	parts = append(parts, quantities...)

	return textmatch.CollapseWhitespace(strings.ToUpper(strings.Join(parts, " ")))
}

// swapDecimalSeparator returns the token with comma and period decimal
// separators exchanged. Tokens without either come back unchanged.
func swapDecimalSeparator(token string) string {
	if strings.Contains(token, ",") {
		return strings.ReplaceAll(token, ",", ".")
	}

	if strings.Contains(token, ".") {
		return strings.ReplaceAll(token, ".", ",")
	}

	return token
}
