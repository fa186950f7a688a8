// Package goquery locates documentation bodies in HTML with CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/doctext"
	"github.com/fwojciec/doctext/html"
)

// Ensure Extractor implements doctext.Extractor at compile time.
var _ doctext.Extractor = (*Extractor)(nil)

// Extractor finds the documentation body with a fixed CSS selector.
type Extractor struct {
	selector string
	matcher  goquery.Matcher
}

// NewExtractor creates an Extractor for the given selector.
// An empty selector uses doctext.DefaultSelector.
func NewExtractor(selector string) (*Extractor, error) {
	if selector == "" {
		selector = doctext.DefaultSelector
	}
	m, err := compile(selector)
	if err != nil {
		return nil, err
	}
	return &Extractor{selector: selector, matcher: m}, nil
}

// Selector returns the CSS selector the extractor matches.
func (e *Extractor) Selector() string {
	return e.selector
}

// Extract returns the first element matching the selector in document order.
func (e *Extractor) Extract(markup string) (doctext.ContentRoot, error) {
	doc, err := parse(markup)
	if err != nil {
		return doctext.ContentRoot{}, err
	}
	return locate(doc, e.matcher)
}

// compile validates selector up front; goquery silently matches nothing
// for selectors it cannot parse.
func compile(selector string) (goquery.Matcher, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, doctext.Errorf(doctext.EINVALID, "invalid selector %q: %v", selector, err)
	}
	return sel, nil
}

func parse(markup string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, doctext.Errorf(doctext.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// locate builds the document arena and returns the first node matching m.
func locate(doc *goquery.Document, m goquery.Matcher) (doctext.ContentRoot, error) {
	sel := doc.FindMatcher(m).First()
	if sel.Length() == 0 {
		return doctext.ContentRoot{}, doctext.Errorf(doctext.ENOTFOUND, "could not find main content section")
	}

	arena, index := html.Build(doc.Nodes[0])
	id, ok := index[sel.Get(0)]
	if !ok {
		return doctext.ContentRoot{}, doctext.Errorf(doctext.ENOTFOUND, "could not find main content section")
	}
	return doctext.ContentRoot{Doc: arena, ID: id}, nil
}
