package mock

import "github.com/fwojciec/chatscrape"

var _ chatscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of chatscrape.Extractor.
type Extractor struct {
	ExtractFn func(html string, opts chatscrape.ExtractOptions) (*chatscrape.ExtractionResult, error)
}

func (e *Extractor) Extract(html string, opts chatscrape.ExtractOptions) (*chatscrape.ExtractionResult, error) {
	return e.ExtractFn(html, opts)
}
