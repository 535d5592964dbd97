package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/chatscrape"
	"github.com/fwojciec/chatscrape/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements chatscrape.Converter at compile time.
var _ chatscrape.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>See <a href="https://example.com/doc.pdf">the doc</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[the doc](https://example.com/doc.pdf)")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><strong>Bold</strong> and <em>italic</em> text.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("converts inline code", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Run <code>go build</code> to compile.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "`go build`")
	})

	t.Run("converts images to markdown", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<img src="https://example.com/a.png" alt="screenshot">`)

		require.NoError(t, err)
		assert.Contains(t, md, "![screenshot](https://example.com/a.png)")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, chatscrape.EINVALID, chatscrape.ErrorCode(err))
	})
}

func TestConverter_ConvertMessages(t *testing.T) {
	t.Parallel()

	t.Run("renders sender and timestamp headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.ConvertMessages([]*chatscrape.Message{
			{Sender: "Alice", Timestamp: "2024-01-01T10:00:00Z", Text: "Hi", HTML: "<p>Hi</p>"},
			{Sender: "Bob", Text: "Hello", HTML: "<p>Hello</p>"},
		})

		require.NoError(t, err)
		assert.Contains(t, md, "## Alice — 2024-01-01T10:00:00Z")
		assert.Contains(t, md, "## Bob")
		assert.Contains(t, md, "Hi")
		assert.Contains(t, md, "Hello")
	})

	t.Run("falls back to Unknown for anonymous senders", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.ConvertMessages([]*chatscrape.Message{
			{Text: "orphan", HTML: "orphan"},
		})

		require.NoError(t, err)
		assert.Contains(t, md, "## Unknown")
	})

	t.Run("lists attachments as links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.ConvertMessages([]*chatscrape.Message{
			{
				Sender: "Alice",
				Text:   "see attached",
				HTML:   "<p>see attached</p>",
				Attachments: []chatscrape.Attachment{
					{Type: chatscrape.AttachmentFile, URL: "https://example.com/report.pdf", Name: "report.pdf"},
					{Type: chatscrape.AttachmentImage, URL: "https://example.com/a.png"},
				},
			},
		})

		require.NoError(t, err)
		assert.Contains(t, md, "- [report.pdf](https://example.com/report.pdf)")
		assert.Contains(t, md, "- [image](https://example.com/a.png)")
	})

	t.Run("empty conversation yields empty transcript", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.ConvertMessages(nil)

		require.NoError(t, err)
		assert.Empty(t, md)
	})
}
