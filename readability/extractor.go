// Package readability locates documentation bodies with go-readability's
// article scoring, for hosts without a known content container.
package readability

import (
	"strings"

	"github.com/fwojciec/doctext"
	"github.com/fwojciec/doctext/html"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements doctext.Extractor at compile time.
var _ doctext.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to locate the main content of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article node readability selected as the content root.
func (e *Extractor) Extract(markup string) (doctext.ContentRoot, error) {
	if strings.TrimSpace(markup) == "" {
		return doctext.ContentRoot{}, doctext.Errorf(doctext.ENOTFOUND, "could not find main content section")
	}

	article, err := readability.FromReader(strings.NewReader(markup), nil)
	if err != nil {
		return doctext.ContentRoot{}, doctext.Errorf(doctext.ENOTFOUND, "could not find main content section: %v", err)
	}
	if article.Node == nil {
		return doctext.ContentRoot{}, doctext.Errorf(doctext.ENOTFOUND, "could not find main content section")
	}

	doc, index := html.Build(article.Node)
	return doctext.ContentRoot{Doc: doc, ID: index[article.Node]}, nil
}
