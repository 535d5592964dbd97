package goquery_test

import (
	"testing"

	"github.com/fwojciec/chatscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Sender(t *testing.T) {
	t.Parallel()

	t.Run("generic class names", func(t *testing.T) {
		t.Parallel()

		for _, class := range []string{"sender", "author", "from", "nickname", "name"} {
			m := extractOne(t, "https://example.com/",
				`<span class="`+class+`">Ada Lovelace</span> hello`)

			assert.Equal(t, "Ada Lovelace", m.Sender, "class %q", class)
		}
	})

	t.Run("data attribute value when element is empty", func(t *testing.T) {
		t.Parallel()

		m := extractOne(t, "https://example.com/",
			`<span data-sender="kate"></span> hello`)

		assert.Equal(t, "kate", m.Sender)
	})

	t.Run("aria-label fallback when element text is empty", func(t *testing.T) {
		t.Parallel()

		m := extractOne(t, "https://example.com/",
			`<span class="author" aria-label="Grace Hopper"></span> hello`)

		assert.Equal(t, "Grace Hopper", m.Sender)
	})

	t.Run("accessibility label with from marker", func(t *testing.T) {
		t.Parallel()

		m := extractOne(t, "https://example.com/",
			`<div aria-label="Message from Bob">hello</div>`)

		assert.Equal(t, "Message from Bob", m.Sender)
	})

	t.Run("no match yields empty sender", func(t *testing.T) {
		t.Parallel()

		m := extractOne(t, "https://example.com/", `anonymous text`)

		assert.Empty(t, m.Sender)
	})
}

func TestExtractor_Sender_LinkedIn(t *testing.T) {
	t.Parallel()

	t.Run("name span wins over generic markers", func(t *testing.T) {
		t.Parallel()

		html := `<ul class="msg-s-message-list-content">
			<li class="msg-s-message-list__event">
				<span class="msg-s-message-group__name">Site Name</span>
				<span class="author">Generic Name</span>
				hello
			</li>
		</ul>`

		e := newTestExtractor()
		res, err := e.Extract(html, chatscrape.ExtractOptions{BaseURL: "https://www.linkedin.com/messaging/"})

		require.NoError(t, err)
		require.Equal(t, 1, res.Count)
		assert.Equal(t, "Site Name", res.Messages[0].Sender)
	})

	t.Run("anonymized name span marker", func(t *testing.T) {
		t.Parallel()

		html := `<ul class="msg-s-message-list-content">
			<li class="msg-s-message-list__event">
				<span data-anonymize="person-name">Jane D.</span>
				hello
			</li>
		</ul>`

		e := newTestExtractor()
		res, err := e.Extract(html, chatscrape.ExtractOptions{BaseURL: "https://www.linkedin.com/messaging/"})

		require.NoError(t, err)
		require.Equal(t, 1, res.Count)
		assert.Equal(t, "Jane D.", res.Messages[0].Sender)
	})
}
