package mock

import (
	"context"

	"github.com/fwojciec/chatscrape"
)

var _ chatscrape.SelectorService = (*SelectorService)(nil)

// SelectorService is a mock implementation of chatscrape.SelectorService.
type SelectorService struct {
	FindSelectorFn   func(ctx context.Context, origin string) (string, error)
	SetSelectorFn    func(ctx context.Context, origin, selector string) error
	DeleteSelectorFn func(ctx context.Context, origin string) error
	ListSelectorsFn  func(ctx context.Context) ([]*chatscrape.StoredSelector, error)
}

func (s *SelectorService) FindSelector(ctx context.Context, origin string) (string, error) {
	return s.FindSelectorFn(ctx, origin)
}

func (s *SelectorService) SetSelector(ctx context.Context, origin, selector string) error {
	return s.SetSelectorFn(ctx, origin, selector)
}

func (s *SelectorService) DeleteSelector(ctx context.Context, origin string) error {
	return s.DeleteSelectorFn(ctx, origin)
}

func (s *SelectorService) ListSelectors(ctx context.Context) ([]*chatscrape.StoredSelector, error) {
	return s.ListSelectorsFn(ctx)
}
