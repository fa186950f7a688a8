package doctext

import "context"

// Page represents a rendered documentation page.
type Page struct {
	Request     Request
	Content     string
	ContentHash string
}

// RenderProgress reports progress while rendering several pages.
type RenderProgress struct {
	Request   Request
	Completed int
	Total     int
	Error     error
}

// RenderProgressFunc is called as pages are processed.
type RenderProgressFunc func(RenderProgress)

// PageRenderer acquires and renders documentation pages.
// Implementations hide retry logic, concurrency and the render pipeline.
type PageRenderer interface {
	// RenderAll renders every request and returns the successful pages in
	// request order. Failures are reported through progress only.
	RenderAll(ctx context.Context, reqs []Request, progress RenderProgressFunc) ([]*Page, error)
}

// PageStore persists pages to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
