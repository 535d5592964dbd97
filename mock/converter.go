package mock

import "github.com/fwojciec/chatscrape"

var _ chatscrape.Converter = (*Converter)(nil)

// Converter is a mock implementation of chatscrape.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
