package mock

import (
	"context"

	"github.com/fwojciec/blogmark"
)

var _ blogmark.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of blogmark.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}

var _ blogmark.SeenFilter = (*SeenFilter)(nil)

// SeenFilter is a mock implementation of blogmark.SeenFilter.
type SeenFilter struct {
	AddFn  func(url string)
	SeenFn func(url string) bool
}

func (f *SeenFilter) Add(url string) {
	if f.AddFn != nil {
		f.AddFn(url)
	}
}

func (f *SeenFilter) Seen(url string) bool {
	if f.SeenFn == nil {
		return false
	}
	return f.SeenFn(url)
}
