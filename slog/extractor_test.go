package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/chatscrape"
	"github.com/fwojciec/chatscrape/mock"
	chatslog "github.com/fwojciec/chatscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs count and container with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string, opts chatscrape.ExtractOptions) (*chatscrape.ExtractionResult, error) {
				return &chatscrape.ExtractionResult{
					Count:     2,
					Messages:  []*chatscrape.Message{{Text: "a"}, {Text: "b"}},
					Container: chatscrape.Container{Selector: "#chat-root", AutoDetected: true},
				}, nil
			},
		}

		extractor := chatslog.NewLoggingExtractor(inner, logger)
		res, err := extractor.Extract("<html></html>", chatscrape.ExtractOptions{BaseURL: "https://example.com/chat"})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Count)

		output := buf.String()
		assert.Contains(t, output, "extraction")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "container=#chat-root")
		assert.Contains(t, output, "auto_detected=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs anonymous containers", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string, opts chatscrape.ExtractOptions) (*chatscrape.ExtractionResult, error) {
				return &chatscrape.ExtractionResult{
					Container: chatscrape.Container{AutoDetected: true},
				}, nil
			},
		}

		extractor := chatslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html></html>", chatscrape.ExtractOptions{})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "container=(anonymous)")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string, opts chatscrape.ExtractOptions) (*chatscrape.ExtractionResult, error) {
				return nil, errors.New("no container")
			},
		}

		extractor := chatslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html></html>", chatscrape.ExtractOptions{})
		require.Error(t, err)
		assert.Contains(t, buf.String(), "no container")
	})
}
