// Package bloom provides URL deduplication for batch runs using Bloom filters.
package bloom

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/blogmark"
)

// Compile-time interface verification.
var _ blogmark.SeenFilter = (*Filter)(nil)

// Filter tracks URLs already processed in a batch run so the same post
// is never converted twice. False positives are possible (a post may be
// skipped that was never processed); false negatives are not. Safe for
// concurrent use by batch workers.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Filter sized for n expected URLs with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a URL as seen. URL fragments are stripped so URLs differing
// only by fragment count as duplicates.
func (f *Filter) Add(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(stripFragment(url))
}

// Seen returns true if the URL might have been marked.
func (f *Filter) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(stripFragment(url))
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
