package mock

import "github.com/fwojciec/doctext"

var _ doctext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of doctext.Extractor.
type Extractor struct {
	ExtractFn func(markup string) (doctext.ContentRoot, error)
}

func (e *Extractor) Extract(markup string) (doctext.ContentRoot, error) {
	return e.ExtractFn(markup)
}
