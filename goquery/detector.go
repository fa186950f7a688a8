package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/doctext"
)

// Detector identifies documentation generators from parsed HTML.
// It checks meta generator tags first and then structural markers that
// are unique to each generator.
type Detector struct{}

// Ensure Detector implements doctext.GeneratorDetector at compile time.
var _ doctext.GeneratorDetector = (*Detector)(nil)

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified generator.
// Returns GeneratorUnknown if the generator cannot be determined.
func (d *Detector) Detect(html string) doctext.Generator {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return doctext.GeneratorUnknown
	}
	return d.DetectDocument(doc)
}

// DetectDocument is like Detect for an already parsed document.
func (d *Detector) DetectDocument(doc *goquery.Document) doctext.Generator {
	if g := d.detectFromMetaGenerator(doc); g != doctext.GeneratorUnknown {
		return g
	}

	// rustdoc marks the body and ships rustdoc-vars
	if d.hasSelector(doc, "body.rustdoc") || d.hasSelector(doc, "#rustdoc-vars") {
		return doctext.GeneratorRustdoc
	}

	if d.hasSelector(doc, "[data-md-component]") || d.hasSelector(doc, ".md-nav--primary") {
		return doctext.GeneratorMkDocs
	}

	if d.hasSelector(doc, ".sphinxsidebar") || d.hasSelector(doc, ".wy-nav-side") {
		return doctext.GeneratorSphinx
	}

	if d.hasSelector(doc, "#__docusaurus") || d.hasSelector(doc, ".theme-doc-markdown") {
		return doctext.GeneratorDocusaurus
	}

	if d.hasSelector(doc, ".Documentation-content") || d.hasSelector(doc, "#pkg-overview") {
		return doctext.GeneratorGodoc
	}

	return doctext.GeneratorUnknown
}

func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) doctext.Generator {
	content, ok := doc.Find(`meta[name="generator"]`).First().Attr("content")
	if !ok {
		return doctext.GeneratorUnknown
	}

	content = strings.ToLower(content)
	switch {
	case strings.Contains(content, "rustdoc"):
		return doctext.GeneratorRustdoc
	case strings.Contains(content, "sphinx"):
		return doctext.GeneratorSphinx
	case strings.Contains(content, "mkdocs"):
		return doctext.GeneratorMkDocs
	case strings.Contains(content, "docusaurus"):
		return doctext.GeneratorDocusaurus
	}
	return doctext.GeneratorUnknown
}

func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
