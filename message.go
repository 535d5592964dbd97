package chatscrape

// AttachmentType classifies an attachment found inside a message node.
type AttachmentType string

// Attachment types.
const (
	AttachmentImage AttachmentType = "image"
	AttachmentVideo AttachmentType = "video"
	AttachmentAudio AttachmentType = "audio"
	AttachmentFile  AttachmentType = "file"

	// AttachmentFileMedia marks a file link whose URL extension matches a
	// known media pattern (e.g. a plain <a href="...jpg">).
	AttachmentFileMedia AttachmentType = "file/media"
)

// Attachment is a media or file reference embedded within a message node.
// URL is always absolute, resolved against the page's base URL.
type Attachment struct {
	Type AttachmentType `json:"type"`
	URL  string         `json:"url"`

	// Name is the display name (link text). Present only for file and
	// file/media entries.
	Name string `json:"name,omitempty"`
}

// Message is one extracted message record. Sender and Timestamp are empty
// when no heuristic matched; Timestamp is the raw matched string in whatever
// format the page used, with no parsing or normalization.
type Message struct {
	// Index is the 0-based position in the produced sequence. It is stable
	// only within one extraction run, not across runs.
	Index int `json:"index"`

	Sender string `json:"sender,omitempty"`

	// Text is the sanitized plain-text content of the node. Never absent,
	// may be empty.
	Text string `json:"text"`

	// HTML is the raw inner markup of the node, kept verbatim for
	// downstream rendering and debugging. It is never sanitized.
	HTML string `json:"html"`

	Timestamp string `json:"timestamp,omitempty"`

	// ContentHash is a hex-encoded xxhash of HTML, useful for caller-side
	// change detection between extraction runs.
	ContentHash string `json:"contentHash"`

	// Attachments is deduplicated by (type, URL); first occurrence wins.
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Empty reports whether the message carries no content. Empty messages are
// dropped before an extraction result is returned.
func (m *Message) Empty() bool {
	return m.Text == "" && len(m.Attachments) == 0
}

// Container describes how the conversation container was resolved.
type Container struct {
	// Selector is the CSS selector that located the container: the
	// memorized selector when it matched, or a simplified "#id" selector
	// when auto-detection found an element with an id. Empty when
	// auto-detection succeeded on an id-less element.
	Selector string

	// AutoDetected is true when resolution fell back to the selector
	// cascades instead of a memorized selector. Callers use it to decide
	// whether to memorize Selector for future runs.
	AutoDetected bool
}

// ExtractionResult is the outcome of one extraction run. Count always equals
// len(Messages).
type ExtractionResult struct {
	Count    int        `json:"count"`
	Messages []*Message `json:"messages"`

	// Container resolution metadata for the calling collaborator; not part
	// of the serialized result.
	Container Container `json:"-"`
}

// ExtractOptions configures a single extraction run.
type ExtractOptions struct {
	// BaseURL is the page's URL. Relative attachment URLs are resolved
	// against it and its hostname gates site-specific selector profiles.
	// When empty, URLs are emitted as found and only generic heuristics run.
	BaseURL string

	// Selector is a memorized container selector to try before
	// auto-detection. A malformed selector is treated as matching nothing.
	Selector string
}

// Extractor converts a rendered HTML snapshot into ordered message records.
// Implementations are stateless: repeated calls on the same input yield
// equal results.
type Extractor interface {
	// Extract classifies message nodes under the resolved container and
	// derives sender, text, timestamp, and attachments for each.
	// Returns ENOTFOUND when no container can be resolved by any means.
	Extract(html string, opts ExtractOptions) (*ExtractionResult, error)
}
