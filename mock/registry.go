package mock

import "github.com/fwojciec/blogmark"

var _ blogmark.SelectorRegistry = (*SelectorRegistry)(nil)

// SelectorRegistry is a mock implementation of blogmark.SelectorRegistry.
type SelectorRegistry struct {
	SelectorsForFn func(domain string) []string
	RegisterFn     func(domain string, selectors ...string)
}

func (r *SelectorRegistry) SelectorsFor(domain string) []string {
	return r.SelectorsForFn(domain)
}

func (r *SelectorRegistry) Register(domain string, selectors ...string) {
	if r.RegisterFn != nil {
		r.RegisterFn(domain, selectors...)
	}
}
