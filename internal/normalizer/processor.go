// Package normalizer turns free-form retail product labels into the
// canonical BRAND + PRODUCT + QUANTITY form.
package normalizer

// Pipeline wires the cleaning, brand matching, quantity extraction and
// reassembly stages. It is safe for concurrent use once constructed.
type Pipeline struct {
	cleaner    *TextNormalizer
	brands     *BrandMatcher
	quantities *QuantityExtractor
	assembler  *Assembler
}

// NewPipeline creates a pipeline with the given brand catalog.
func NewPipeline(catalog Catalog) *Pipeline {
	return &Pipeline{
		cleaner:    NewTextNormalizer(),
		brands:     NewBrandMatcher(catalog),
		quantities: NewQuantityExtractor(),
		assembler:  NewAssembler(),
	}
}

// NewDefaultPipeline creates a pipeline with the built-in brand catalog.
func NewDefaultPipeline() *Pipeline {
	return NewPipeline(DefaultCatalog())
}

// Normalize corrects a single label. It is a pure function of its input:
// any string in, always a string out, possibly empty. An unrecognized
// brand or a label without quantities is not an error; those parts simply
// contribute nothing.
func (p *Pipeline) Normalize(label string) string {
	cleaned := p.cleaner.Clean(label)
	if cleaned == "" {
		return ""
	}

	brand, _ := p.brands.Match(cleaned)
	quantities := p.quantities.Extract(cleaned)

	return p.assembler.Assemble(cleaned, brand, quantities)
}
