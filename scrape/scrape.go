// Package scrape orchestrates chat-page scraping: fetching a rendered
// snapshot, running the extraction core, memorizing container selectors per
// page origin, and recording history. It owns all mutable state so the
// extraction core stays stateless.
package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/chatscrape"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Scraper coordinates the extract and set-selector commands.
type Scraper struct {
	Fetcher   chatscrape.Fetcher
	Extractor chatscrape.Extractor
	Selectors chatscrape.SelectorService

	// History, when set, records every successful scrape.
	History chatscrape.HistoryService

	// RateLimiter, when set, throttles ScrapeAll per domain.
	RateLimiter chatscrape.DomainLimiter

	Concurrency int
	RetryDelays []time.Duration

	// Now stamps ScrapedAt on payloads. Defaults to time.Now.
	Now func() time.Time
}

// Origin reduces a page URL to its origin (scheme://host[:port]), the key
// under which container selectors are memorized.
func Origin(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", chatscrape.Errorf(chatscrape.EINVALID, "invalid page URL %q", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

// Scrape runs the extract command for one page: fetch, extract with the
// origin's memorized selector (if any), and wrap the result in the boundary
// payload. When auto-detection succeeded on an element with an id, the
// simplified "#id" selector is memorized for future runs; a previously
// memorized selector is left untouched otherwise. Memorization is
// best-effort and never fails the scrape.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (*chatscrape.ScrapeResult, error) {
	origin, err := Origin(pageURL)
	if err != nil {
		return nil, err
	}

	preferred := ""
	if s.Selectors != nil {
		sel, err := s.Selectors.FindSelector(ctx, origin)
		if err != nil && chatscrape.ErrorCode(err) != chatscrape.ENOTFOUND {
			return nil, err
		}
		preferred = sel
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	page, err := FetchWithRetryDelays(ctx, pageURL, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	res, err := s.Extractor.Extract(page.HTML, chatscrape.ExtractOptions{
		BaseURL:  pageURL,
		Selector: preferred,
	})
	if err != nil {
		return nil, err
	}

	if s.Selectors != nil && res.Container.AutoDetected && res.Container.Selector != "" {
		_ = s.Selectors.SetSelector(ctx, origin, res.Container.Selector)
	}

	payload := &chatscrape.ScrapeResult{
		RunID:             uuid.New().String(),
		PageTitle:         page.Title,
		PageURL:           pageURL,
		ScrapedAt:         s.now().UTC(),
		ContainerSelector: res.Container.Selector,
		Count:             res.Count,
		Messages:          res.Messages,
	}

	if s.History != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		rec := &chatscrape.ScrapeRecord{
			Origin:    origin,
			PageURL:   pageURL,
			ScrapedAt: payload.ScrapedAt,
			Count:     payload.Count,
			Payload:   string(raw),
		}
		if err := s.History.CreateScrape(ctx, rec); err != nil {
			return nil, fmt.Errorf("record scrape: %w", err)
		}
	}

	return payload, nil
}

// SetSelector runs the set-selector command: memorize a container selector
// for a page origin. The argument may be a full page URL; it is reduced to
// its origin. The selector is stored as given; malformed selectors are
// tolerated at extraction time instead of rejected here.
func (s *Scraper) SetSelector(ctx context.Context, pageURL string, selector string) error {
	origin, err := Origin(pageURL)
	if err != nil {
		return err
	}
	return s.Selectors.SetSelector(ctx, origin, selector)
}

// Outcome is the result of scraping one URL within a batch.
type Outcome struct {
	URL     string
	Payload *chatscrape.ScrapeResult
	Err     error
}

// ProgressEvent reports progress during a batch scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// ScrapeAll scrapes multiple pages concurrently, rate-limited per domain
// when a RateLimiter is configured. Outcomes are returned in input order.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) ([]Outcome, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	outcomes := make([]Outcome, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, pageURL := range urls {
		g.Go(func() error {
			if s.RateLimiter != nil {
				if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
					if err := s.RateLimiter.Wait(gctx, u.Host); err != nil {
						outcomes[i] = Outcome{URL: pageURL, Err: err}
						return nil
					}
				}
			}

			payload, err := s.Scrape(gctx, pageURL)
			outcomes[i] = Outcome{URL: pageURL, Payload: payload, Err: err}

			if progress != nil {
				event := ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Add(1)),
					Total:     total,
					URL:       pageURL,
				}
				if err != nil {
					event.Type = ProgressFailed
					event.Error = err
				}
				progress(event)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return outcomes, nil
}

func (s *Scraper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
