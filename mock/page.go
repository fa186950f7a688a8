package mock

import (
	"context"

	"github.com/fwojciec/doctext"
)

// Compile-time interface verification.
var (
	_ doctext.PageRenderer = (*PageRenderer)(nil)
	_ doctext.PageStore    = (*PageStore)(nil)
)

// PageRenderer is a mock implementation of doctext.PageRenderer.
type PageRenderer struct {
	RenderAllFn func(ctx context.Context, reqs []doctext.Request, progress doctext.RenderProgressFunc) ([]*doctext.Page, error)
}

func (r *PageRenderer) RenderAll(ctx context.Context, reqs []doctext.Request, progress doctext.RenderProgressFunc) ([]*doctext.Page, error) {
	return r.RenderAllFn(ctx, reqs, progress)
}

// PageStore is a mock implementation of doctext.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *doctext.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *doctext.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
