package scrape_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/chatscrape"
	"github.com/fwojciec/chatscrape/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	noDelays := []time.Duration{0, 0, 0}

	t.Run("returns immediately on success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (*chatscrape.Page, error) {
			calls++
			return &chatscrape.Page{URL: url, HTML: "<html></html>"}, nil
		}

		page, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", page.URL)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (*chatscrape.Page, error) {
			calls++
			if calls < 3 {
				return nil, errors.New("transient")
			}
			return &chatscrape.Page{URL: url}, nil
		}

		page, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (*chatscrape.Page, error) {
			calls++
			return nil, fmt.Errorf("attempt %d failed", calls)
		}

		_, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.Error(t, err)
		assert.Equal(t, 4, calls) // 1 initial + 3 retries
		assert.Contains(t, err.Error(), "attempt 4")
	})

	t.Run("logs each retry", func(t *testing.T) {
		t.Parallel()

		var logged []string
		logger := func(format string, args ...any) {
			logged = append(logged, fmt.Sprintf(format, args...))
		}
		fetch := func(ctx context.Context, url string) (*chatscrape.Page, error) {
			return nil, errors.New("down")
		}

		_, err := scrape.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, logger, noDelays)
		require.Error(t, err)
		assert.Len(t, logged, 3)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (*chatscrape.Page, error) {
			cancel()
			return nil, errors.New("down")
		}

		_, err := scrape.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, []time.Duration{time.Hour})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows independent domains concurrently", func(t *testing.T) {
		t.Parallel()

		l := scrape.NewLimiter(1)
		ctx := context.Background()

		require.NoError(t, l.Wait(ctx, "a.example.com"))
		require.NoError(t, l.Wait(ctx, "b.example.com"))
	})

	t.Run("respects context cancellation while throttled", func(t *testing.T) {
		t.Parallel()

		l := scrape.NewLimiter(0.001)
		ctx := context.Background()
		require.NoError(t, l.Wait(ctx, "a.example.com"))

		ctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()
		err := l.Wait(ctx, "a.example.com")
		require.Error(t, err)
	})
}
