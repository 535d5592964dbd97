package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/chatscrape"
)

// Ensure LoggingSelectorService implements chatscrape.SelectorService.
var _ chatscrape.SelectorService = (*LoggingSelectorService)(nil)

// LoggingSelectorService wraps a SelectorService with debug logging for
// selector memorization.
type LoggingSelectorService struct {
	next   chatscrape.SelectorService
	logger *slog.Logger
}

// NewLoggingSelectorService creates a new LoggingSelectorService.
func NewLoggingSelectorService(next chatscrape.SelectorService, logger *slog.Logger) *LoggingSelectorService {
	return &LoggingSelectorService{next: next, logger: logger}
}

// FindSelector delegates to the wrapped service. Lookups are frequent and
// misses are expected, so only hits are logged.
func (s *LoggingSelectorService) FindSelector(ctx context.Context, origin string) (string, error) {
	selector, err := s.next.FindSelector(ctx, origin)
	if err == nil {
		s.logger.Debug("selector lookup", "origin", origin, "selector", selector)
	}
	return selector, err
}

// SetSelector delegates to the wrapped service and logs the operation.
func (s *LoggingSelectorService) SetSelector(ctx context.Context, origin, selector string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("selector memorized",
			"origin", origin,
			"selector", selector,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SetSelector(ctx, origin, selector)
}

// DeleteSelector delegates to the wrapped service and logs the operation.
func (s *LoggingSelectorService) DeleteSelector(ctx context.Context, origin string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("selector forgotten",
			"origin", origin,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSelector(ctx, origin)
}

// ListSelectors delegates to the wrapped service.
func (s *LoggingSelectorService) ListSelectors(ctx context.Context) ([]*chatscrape.StoredSelector, error) {
	return s.next.ListSelectors(ctx)
}
