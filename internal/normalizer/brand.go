package normalizer

import (
	"regexp"
	"strings"
)

// Catalog is an ordered list of recognized brand tokens. Matching is
// first-match-wins in catalog order, so more specific entries should come
// before broader ones.
type Catalog []string

// DefaultCatalog returns the built-in brand vocabulary.
func DefaultCatalog() Catalog {
	return Catalog{"CRF", "CARF", "CARREFOUR", "PAPERMATE", "PM", "SHARPIE", "ROTRING"}
}

type brandPattern struct {
	name string
	re   *regexp.Regexp
}

// BrandMatcher finds a known brand token inside cleaned label text.
type BrandMatcher struct {
	patterns []brandPattern
}

// NewBrandMatcher compiles a whole-word pattern per catalog entry.
// The catalog is copied; later mutation of the argument has no effect.
func NewBrandMatcher(catalog Catalog) *BrandMatcher {
	m := &BrandMatcher{patterns: make([]brandPattern, 0, len(catalog))}

	for _, brand := range catalog {
		name := strings.ToUpper(strings.TrimSpace(brand))
		if name == "" {
			continue
		}

		m.patterns = append(m.patterns, brandPattern{
			name: name,
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`),
		})
	}

	return m
}

// Match returns the first catalog entry appearing as a whole word in text,
// case-insensitively. Only one brand is ever recognized per label; catalog
// order breaks ties. ok is false when no entry matches.
func (m *BrandMatcher) Match(text string) (brand string, ok bool) {
	upper := strings.ToUpper(text)

	for _, p := range m.patterns {
		if p.re.MatchString(upper) {
			return p.name, true
		}
	}

	return "", false
}
