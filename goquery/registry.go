package goquery

import (
	"slices"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/doctext"
)

var _ doctext.Extractor = (*Registry)(nil)

// Registry maps documentation generators to the selector of their content
// container. Extract detects the generator of a page and applies its
// selector, or the fallback selector when the generator is unknown or has
// no registered selector. Supporting a new documentation host only takes
// a new Register call.
type Registry struct {
	detector  *Detector
	fallback  goquery.Matcher
	selectors map[doctext.Generator]goquery.Matcher
}

// NewRegistry creates an empty Registry with the given fallback selector.
func NewRegistry(detector *Detector, fallback string) (*Registry, error) {
	m, err := compile(fallback)
	if err != nil {
		return nil, err
	}
	return &Registry{
		detector:  detector,
		fallback:  m,
		selectors: make(map[doctext.Generator]goquery.Matcher),
	}, nil
}

// NewDefaultRegistry returns a Registry with selectors for all recognized
// generators and doctext.DefaultSelector as fallback.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(NewDetector(), doctext.DefaultSelector)
	if err != nil {
		panic(err)
	}
	for g, selector := range map[doctext.Generator]string{
		doctext.GeneratorRustdoc:    doctext.DefaultSelector,
		doctext.GeneratorSphinx:     `div[role="main"], div.body`,
		doctext.GeneratorMkDocs:     `article.md-content__inner, div[role="main"]`,
		doctext.GeneratorDocusaurus: `article`,
		doctext.GeneratorGodoc:      `.Documentation-content`,
	} {
		if err := r.Register(g, selector); err != nil {
			panic(err)
		}
	}
	return r
}

// Register sets the content selector for a generator.
// If a selector is already registered for the generator, it is replaced.
func (r *Registry) Register(g doctext.Generator, selector string) error {
	m, err := compile(selector)
	if err != nil {
		return err
	}
	r.selectors[g] = m
	return nil
}

// List returns all generators with a registered selector, sorted by name.
func (r *Registry) List() []doctext.Generator {
	generators := make([]doctext.Generator, 0, len(r.selectors))
	for g := range r.selectors {
		generators = append(generators, g)
	}
	slices.Sort(generators)
	return generators
}

// Extract detects the page's generator and returns the first element
// matching its content selector.
func (r *Registry) Extract(markup string) (doctext.ContentRoot, error) {
	doc, err := parse(markup)
	if err != nil {
		return doctext.ContentRoot{}, err
	}

	m, ok := r.selectors[r.detector.DetectDocument(doc)]
	if !ok {
		m = r.fallback
	}
	return locate(doc, m)
}
