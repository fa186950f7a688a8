package mock

import "github.com/fwojciec/doctext"

var _ doctext.Converter = (*Converter)(nil)

// Converter is a mock implementation of doctext.Converter.
type Converter struct {
	ConvertFn func(root doctext.ContentRoot) (string, error)
}

func (c *Converter) Convert(root doctext.ContentRoot) (string, error) {
	return c.ConvertFn(root)
}
