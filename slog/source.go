package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doctext"
)

// Ensure LoggingSource implements doctext.Source.
var _ doctext.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with debug logging.
type LoggingSource struct {
	next   doctext.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next doctext.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Acquire logs the requested page and delegates to the wrapped source.
func (s *LoggingSource) Acquire(ctx context.Context, req doctext.Request) (markup string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("acquire",
			"request", req.String(),
			"page", req.PagePath(),
			"bytes", len(markup),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Acquire(ctx, req)
}
