// Package slog provides logging decorators for the core service interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/chatscrape"
)

// Ensure LoggingExtractor implements chatscrape.Extractor.
var _ chatscrape.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging for container
// resolution and message extraction.
type LoggingExtractor struct {
	next   chatscrape.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next chatscrape.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string, opts chatscrape.ExtractOptions) (res *chatscrape.ExtractionResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", opts.BaseURL,
			"duration", time.Since(begin),
			"err", err,
		}
		if res != nil {
			selector := res.Container.Selector
			if selector == "" {
				selector = "(anonymous)"
			}
			attrs = append(attrs,
				"count", res.Count,
				"container", selector,
				"auto_detected", res.Container.AutoDetected,
			)
		}
		e.logger.Info("extraction", attrs...)
	}(time.Now())
	return e.next.Extract(html, opts)
}
