package goquery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/chatscrape"
)

// Ensure Extractor implements chatscrape.Extractor at compile time.
var _ chatscrape.Extractor = (*Extractor)(nil)

// Extractor converts rendered HTML into ordered message records using
// cascades of heuristic CSS rules. It holds no mutable state: every call
// reads only its inputs, so repeated extraction of the same snapshot yields
// equal results.
type Extractor struct {
	registry *Registry
}

// NewExtractor creates an Extractor with the given profile registry.
// A nil registry disables site-specific heuristics.
func NewExtractor(registry *Registry) *Extractor {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Extractor{registry: registry}
}

// Extract resolves the conversation container, classifies its message nodes
// and derives sender, text, timestamp and attachments for each. Records with
// empty text and no attachments are dropped; the survivors are indexed by
// their position in the returned sequence.
func (e *Extractor) Extract(html string, opts chatscrape.ExtractOptions) (*chatscrape.ExtractionResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, chatscrape.Errorf(chatscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	var base *url.URL
	var host string
	if opts.BaseURL != "" {
		if u, parseErr := url.Parse(opts.BaseURL); parseErr == nil {
			base = u
			host = u.Hostname()
		}
	}

	profile := e.registry.ForHost(host)

	container, info := resolveContainer(doc, opts.Selector, profile)
	if container == nil {
		return nil, chatscrape.Errorf(chatscrape.ENOTFOUND,
			"no conversation container found: neither the memorized selector nor the known chat layouts matched this page")
	}

	nodes := classify(container, profile)

	messages := make([]*chatscrape.Message, 0, len(nodes))
	for _, node := range nodes {
		m := buildMessage(node, profile, base)
		if m.Empty() {
			continue
		}
		m.Index = len(messages)
		messages = append(messages, m)
	}

	return &chatscrape.ExtractionResult{
		Count:     len(messages),
		Messages:  messages,
		Container: info,
	}, nil
}

// buildMessage runs the field resolvers over one classified node. The
// resolvers are independent and share no state, so their order is
// irrelevant. Index is assigned by the caller after empty-record filtering.
func buildMessage(node *goquery.Selection, profile *Profile, base *url.URL) *chatscrape.Message {
	raw, err := node.Html()
	if err != nil {
		raw = ""
	}

	return &chatscrape.Message{
		Text:        strings.TrimSpace(node.Text()),
		HTML:        raw,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(raw)),
		Sender:      findSender(node, profile),
		Timestamp:   findTimestamp(node, profile),
		Attachments: extractAttachments(node, base),
	}
}
