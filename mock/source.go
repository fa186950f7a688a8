package mock

import (
	"context"

	"github.com/fwojciec/doctext"
)

var _ doctext.Source = (*Source)(nil)

// Source is a mock implementation of doctext.Source.
type Source struct {
	AcquireFn func(ctx context.Context, req doctext.Request) (string, error)
}

func (s *Source) Acquire(ctx context.Context, req doctext.Request) (string, error) {
	return s.AcquireFn(ctx, req)
}
