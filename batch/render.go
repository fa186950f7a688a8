// Package batch renders several documentation pages concurrently.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/doctext"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages acquired at once.
const DefaultConcurrency = 4

// Ensure Renderer implements doctext.PageRenderer at compile time.
var _ doctext.PageRenderer = (*Renderer)(nil)

// Renderer acquires pages from a Source and renders them with a Pipeline.
type Renderer struct {
	Source      doctext.Source
	Pipeline    *doctext.Pipeline
	Concurrency int
	RetryDelays []time.Duration
}

// RenderAll renders every request and returns the successful pages in
// request order. A failed request is reported through progress and left
// out of the result; only context cancellation fails the whole batch.
func (r *Renderer) RenderAll(ctx context.Context, reqs []doctext.Request, progress doctext.RenderProgressFunc) ([]*doctext.Page, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	pages := make([]*doctext.Page, len(reqs))

	var mu sync.Mutex
	completed := 0
	report := func(req doctext.Request, err error) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		completed++
		progress(doctext.RenderProgress{
			Request:   req,
			Completed: completed,
			Total:     len(reqs),
			Error:     err,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			page, err := r.render(gctx, req, delays)
			if err != nil {
				report(req, err)
				return nil
			}
			pages[i] = page
			report(req, nil)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*doctext.Page, 0, len(pages))
	for _, p := range pages {
		if p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// render acquires and renders a single page.
func (r *Renderer) render(ctx context.Context, req doctext.Request, delays []time.Duration) (*doctext.Page, error) {
	markup, err := AcquireWithRetry(ctx, req, r.Source.Acquire, delays)
	if err != nil {
		return nil, err
	}

	content, err := r.Pipeline.Render(markup)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", req, err)
	}

	return &doctext.Page{
		Request:     req,
		Content:     content,
		ContentHash: ComputeHash(content),
	}, nil
}

// ComputeHash returns the xxhash of content as 16 hex digits.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
