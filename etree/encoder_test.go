package etree_test

import (
	"testing"
	"time"

	"github.com/fwojciec/chatscrape"
	"github.com/fwojciec/chatscrape/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("renders conversation metadata and messages", func(t *testing.T) {
		t.Parallel()

		res := &chatscrape.ScrapeResult{
			PageTitle:         "Chat with Dana",
			PageURL:           "https://example.com/chat",
			ScrapedAt:         time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			ContainerSelector: "#chat-root",
			Count:             2,
			Messages: []*chatscrape.Message{
				{Index: 0, Sender: "Alice", Text: "Hi", Timestamp: "2024-01-01T10:00:00Z"},
				{
					Index: 1,
					Text:  "look",
					Attachments: []chatscrape.Attachment{
						{Type: chatscrape.AttachmentImage, URL: "https://example.com/a.png"},
					},
				},
			},
		}

		xml, err := etree.NewEncoder().Encode(res)
		require.NoError(t, err)

		assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, xml, `<conversation url="https://example.com/chat" title="Chat with Dana" scrapedAt="2024-06-01T12:00:00Z" count="2" containerSelector="#chat-root">`)
		assert.Contains(t, xml, `<message index="0" sender="Alice" timestamp="2024-01-01T10:00:00Z">`)
		assert.Contains(t, xml, `<text>Hi</text>`)
		assert.Contains(t, xml, `<attachment type="image" url="https://example.com/a.png"/>`)
	})

	t.Run("omits absent optional fields", func(t *testing.T) {
		t.Parallel()

		res := &chatscrape.ScrapeResult{
			PageURL:   "https://example.com/chat",
			ScrapedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			Count:     1,
			Messages:  []*chatscrape.Message{{Index: 0, Text: "Hi"}},
		}

		xml, err := etree.NewEncoder().Encode(res)
		require.NoError(t, err)

		assert.NotContains(t, xml, "containerSelector")
		assert.NotContains(t, xml, "sender=")
		assert.NotContains(t, xml, "timestamp=")
	})

	t.Run("escapes markup in message text", func(t *testing.T) {
		t.Parallel()

		res := &chatscrape.ScrapeResult{
			PageURL:   "https://example.com/chat",
			ScrapedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			Count:     1,
			Messages:  []*chatscrape.Message{{Index: 0, Text: "a < b & c"}},
		}

		xml, err := etree.NewEncoder().Encode(res)
		require.NoError(t, err)
		assert.Contains(t, xml, "a &lt; b &amp; c")
	})
}
