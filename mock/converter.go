package mock

import "github.com/fwojciec/blogmark"

var _ blogmark.Converter = (*Converter)(nil)

// Converter is a mock implementation of blogmark.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
