package mock

import "github.com/fwojciec/blogmark"

var _ blogmark.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of blogmark.Extractor.
type Extractor struct {
	ExtractFn func(html, sourceURL string) (*blogmark.ExtractResult, error)
}

func (e *Extractor) Extract(html, sourceURL string) (*blogmark.ExtractResult, error) {
	return e.ExtractFn(html, sourceURL)
}
