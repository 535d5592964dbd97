package chatscrape

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input is the raw markup of a message node; the output is its
	// Markdown representation.
	Convert(html string) (string, error)
}
