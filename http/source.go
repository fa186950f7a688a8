package http

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/doctext"
)

// DefaultBaseURL is the documentation host used when none is configured.
const DefaultBaseURL = "https://docs.rs"

// Ensure Source implements doctext.Source at compile time.
var _ doctext.Source = (*Source)(nil)

// Source acquires rustdoc pages from a documentation host laid out like
// docs.rs: <base>/<crate>/<version>/<module>/<page>.
type Source struct {
	fetcher doctext.Fetcher
	baseURL string
	limiter doctext.DomainLimiter
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithBaseURL sets the documentation host. Empty keeps the default.
func WithBaseURL(base string) SourceOption {
	return func(s *Source) {
		if base != "" {
			s.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithLimiter rate limits requests per host.
func WithLimiter(l doctext.DomainLimiter) SourceOption {
	return func(s *Source) {
		s.limiter = l
	}
}

// NewSource creates a Source that fetches pages with fetcher.
func NewSource(fetcher doctext.Fetcher, opts ...SourceOption) *Source {
	s := &Source{
		fetcher: fetcher,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the address of the page described by req.
func (s *Source) URL(req doctext.Request) string {
	version := req.Version
	if version == "" {
		version = "latest"
	}
	return s.baseURL + "/" + req.Crate + "/" + version + "/" + req.ModuleName() + "/" + req.PagePath()
}

// Acquire fetches the markup of the requested page.
func (s *Source) Acquire(ctx context.Context, req doctext.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	pageURL := s.URL(req)
	if s.limiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			return "", doctext.Errorf(doctext.EINVALID, "invalid documentation URL %q", pageURL)
		}
		if err := s.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	return s.fetcher.Fetch(ctx, pageURL)
}
