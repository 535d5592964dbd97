package chatscrape

import "context"

// Page is a rendered snapshot of a chat page at fetch time.
type Page struct {
	URL   string
	Title string
	HTML  string
}

// Fetcher retrieves rendered page snapshots from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// chat UIs, or plain HTTP for static/dumped pages.
type Fetcher interface {
	// Fetch navigates to the URL and returns the rendered page snapshot.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter rate-limits operations per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
