package mock

import (
	"context"

	"github.com/fwojciec/chatscrape"
)

var _ chatscrape.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of chatscrape.HistoryService.
type HistoryService struct {
	CreateScrapeFn          func(ctx context.Context, rec *chatscrape.ScrapeRecord) error
	FindScrapesFn           func(ctx context.Context, filter chatscrape.ScrapeFilter) ([]*chatscrape.ScrapeRecord, error)
	DeleteScrapesByOriginFn func(ctx context.Context, origin string) error
}

func (s *HistoryService) CreateScrape(ctx context.Context, rec *chatscrape.ScrapeRecord) error {
	return s.CreateScrapeFn(ctx, rec)
}

func (s *HistoryService) FindScrapes(ctx context.Context, filter chatscrape.ScrapeFilter) ([]*chatscrape.ScrapeRecord, error) {
	return s.FindScrapesFn(ctx, filter)
}

func (s *HistoryService) DeleteScrapesByOrigin(ctx context.Context, origin string) error {
	return s.DeleteScrapesByOriginFn(ctx, origin)
}
