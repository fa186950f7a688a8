package mock

import "github.com/fwojciec/doctext"

var _ doctext.GeneratorDetector = (*GeneratorDetector)(nil)

// GeneratorDetector is a mock implementation of doctext.GeneratorDetector.
type GeneratorDetector struct {
	DetectFn func(html string) doctext.Generator
}

func (d *GeneratorDetector) Detect(html string) doctext.Generator {
	return d.DetectFn(html)
}
