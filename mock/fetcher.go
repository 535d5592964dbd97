package mock

import (
	"context"

	"github.com/fwojciec/chatscrape"
)

var _ chatscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of chatscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*chatscrape.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*chatscrape.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ chatscrape.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of chatscrape.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
