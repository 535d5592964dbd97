package scrape

import (
	"context"
	"sync"

	"github.com/fwojciec/chatscrape"
	"golang.org/x/time/rate"
)

var _ chatscrape.DomainLimiter = (*Limiter)(nil)

// Limiter rate-limits requests per domain so batch scrapes do not hammer a
// single host. Each domain gets its own token bucket.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewLimiter returns a Limiter allowing rps requests per second per domain.
func NewLimiter(rps float64) *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    1,
	}
}

// Wait blocks until a request to the domain is allowed or the context is
// canceled.
func (l *Limiter) Wait(ctx context.Context, domain string) error {
	return l.limiter(domain).Wait(ctx)
}

func (l *Limiter) limiter(domain string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[domain]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[domain] = lim
	}
	return lim
}
