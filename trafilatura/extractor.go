// Package trafilatura locates documentation bodies with go-trafilatura,
// for hosts without a known content container.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/doctext"
	"github.com/fwojciec/doctext/html"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements doctext.Extractor at compile time.
var _ doctext.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to locate the main content of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns trafilatura's content node as the content root.
func (e *Extractor) Extract(markup string) (doctext.ContentRoot, error) {
	if strings.TrimSpace(markup) == "" {
		return doctext.ContentRoot{}, doctext.Errorf(doctext.ENOTFOUND, "could not find main content section")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(markup), opts)
	if err != nil {
		return doctext.ContentRoot{}, doctext.Errorf(doctext.ENOTFOUND, "could not find main content section: %v", err)
	}
	if result.ContentNode == nil {
		return doctext.ContentRoot{}, doctext.Errorf(doctext.ENOTFOUND, "could not find main content section")
	}

	doc, index := html.Build(result.ContentNode)
	return doctext.ContentRoot{Doc: doc, ID: index[result.ContentNode]}, nil
}
