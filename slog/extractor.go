package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/doctext"
)

// Ensure LoggingExtractor implements doctext.Extractor.
var _ doctext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
// When a detector is set, the page's generator is logged too.
type LoggingExtractor struct {
	next     doctext.Extractor
	detector doctext.GeneratorDetector
	logger   *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. detector may be nil.
func NewLoggingExtractor(next doctext.Extractor, detector doctext.GeneratorDetector, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, detector: detector, logger: logger}
}

// Extract logs the outcome of locating the documentation body.
func (e *LoggingExtractor) Extract(markup string) (root doctext.ContentRoot, err error) {
	if e.detector != nil {
		begin := time.Now()
		generator := string(e.detector.Detect(markup))
		if generator == "" {
			generator = "(unknown)"
		}
		e.logger.Info("generator detection",
			"generator", generator,
			"duration", time.Since(begin),
		)
	}

	defer func(begin time.Time) {
		nodes := 0
		if !root.IsZero() {
			nodes = len(root.Doc.Nodes)
		}
		e.logger.Info("extract",
			"bytes", len(markup),
			"nodes", nodes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(markup)
}
