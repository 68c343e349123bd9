package normalizer

import (
	"regexp"
	"strings"
)

// Quantity pattern cascade. The families are evaluated independently over
// the same text, in this fixed order; they do not consume each other's
// matches, so the same physical substring can surface through more than
// one family. Deduplication is by exact string only — differently written
// tokens for the same magnitude are kept distinct on purpose.
var (
	decimalQtyRe    = regexp.MustCompile(`\b\d+[.,]\d+\s*(?:KG|G|L|ML|CL)\b`)
	multiplierQtyRe = regexp.MustCompile(`\b\d+X\d+[.,]?\d*\s*(?:KG|G|L|ML|CL)\b`)
	largeBareQtyRe  = regexp.MustCompile(`\b(?:[1-9]\d{2,}|[1-9]\d)\s*(?:KG|G|L|ML|CL)\b`)
	smallBareQtyRe  = regexp.MustCompile(`(?:^|\s)([1-9])\s*(KG|G|L|ML|CL)\b`)
	fractionUnitRe  = regexp.MustCompile(`\b\d+/\d+\s*(?:KG|G|L|ML|CL)\b`)
	bareFractionRe  = regexp.MustCompile(`\b\d+/\d+\b`)

	// periodDecimalRe rewrites a period decimal separator to the canonical
	// comma form ("1.5L" -> "1,5L").
	periodDecimalRe = regexp.MustCompile(`(\d+)\.(\d+)`)
)

// QuantityExtractor finds pack-size and volume/weight tokens in cleaned
// label text.
type QuantityExtractor struct {
	matchers []func(text string, found *tokenSet)
}

// NewQuantityExtractor creates the extractor with the fixed cascade.
func NewQuantityExtractor() *QuantityExtractor {
	e := &QuantityExtractor{}
	e.matchers = []func(string, *tokenSet){
		e.decimalQuantities,
		e.multiplierQuantities,
		e.largeBareQuantities,
		e.smallBareQuantities,
		e.fractionQuantities,
		e.bareFractions,
	}

	return e
}

// Extract returns the distinct quantity tokens of text in first-discovery
// order across the cascade. Decimal separators are canonicalized to commas.
func (e *QuantityExtractor) Extract(text string) []string {
	upper := strings.ToUpper(text)

	found := newTokenSet()
	for _, match := range e.matchers {
		match(upper, found)
	}

	return found.items
}

// decimalQuantities captures "1,5L", "2.5 ML" and similar.
func (e *QuantityExtractor) decimalQuantities(text string, found *tokenSet) {
	for _, m := range decimalQtyRe.FindAllString(text, -1) {
		found.add(periodDecimalRe.ReplaceAllString(m, "${1},${2}"))
	}
}

// multiplierQuantities captures pack multipliers such as "6X30G" or "4X0.5L".
func (e *QuantityExtractor) multiplierQuantities(text string, found *tokenSet) {
	for _, m := range multiplierQtyRe.FindAllString(text, -1) {
		found.add(periodDecimalRe.ReplaceAllString(m, "${1},${2}"))
	}
}

// largeBareQuantities captures integers of at least two digits followed by
// a unit ("330ML", "75 CL"). The >=10 floor keeps stray small numbers
// (model numbers, package counts) out of the quantity list.
func (e *QuantityExtractor) largeBareQuantities(text string, found *tokenSet) {
	for _, m := range largeBareQtyRe.FindAllString(text, -1) {
		found.add(m)
	}
}

// smallBareQuantities captures a single digit 1-9 plus unit, but only when
// the digit sits at the start of the text or right after whitespace. The
// stricter boundary avoids reading digits embedded in other tokens, like a
// SKU, as quantities.
func (e *QuantityExtractor) smallBareQuantities(text string, found *tokenSet) {
	for _, m := range smallBareQtyRe.FindAllStringSubmatch(text, -1) {
		found.add(m[1] + m[2])
	}
}

// fractionQuantities captures fractions carrying a unit ("1/2L").
func (e *QuantityExtractor) fractionQuantities(text string, found *tokenSet) {
	for _, m := range fractionUnitRe.FindAllString(text, -1) {
		found.add(m)
	}
}

// bareFractions captures unitless fractions, skipping any fraction already
// contained in a recorded token (it was captured with its unit).
func (e *QuantityExtractor) bareFractions(text string, found *tokenSet) {
	for _, m := range bareFractionRe.FindAllString(text, -1) {
		if !found.containsSubstring(m) {
			found.add(m)
		}
	}
}

// tokenSet is an ordered set of token strings: exact duplicates are
// dropped, first-occurrence order is preserved.
type tokenSet struct {
	seen  map[string]struct{}
	items []string
}

func newTokenSet() *tokenSet {
	return &tokenSet{seen: make(map[string]struct{})}
}

func (s *tokenSet) add(token string) {
	if _, dup := s.seen[token]; dup {
		return
	}

	s.seen[token] = struct{}{}
	s.items = append(s.items, token)
}

// containsSubstring reports whether any recorded token contains sub.
func (s *tokenSet) containsSubstring(sub string) bool {
	for _, item := range s.items {
		if strings.Contains(item, sub) {
			return true
		}
	}

	return false
}
