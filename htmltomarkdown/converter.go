// Package htmltomarkdown renders content roots as Markdown with html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/doctext"
	"github.com/fwojciec/doctext/html"
)

// Ensure Converter implements doctext.Converter at compile time.
var _ doctext.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert content roots to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms the children of root into Markdown.
// An empty content root converts to an empty string.
func (c *Converter) Convert(root doctext.ContentRoot) (string, error) {
	inner, err := html.InnerHTML(root)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(inner) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(inner)
	if err != nil {
		return "", doctext.Errorf(doctext.EINTERNAL, "HTML to Markdown conversion failed: %v", err)
	}

	return result, nil
}
