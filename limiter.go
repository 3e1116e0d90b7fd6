package blogmark

import "context"

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// SeenFilter tracks URLs that have already been processed, so a batch run
// never converts the same post twice.
type SeenFilter interface {
	// Add marks a URL as seen.
	Add(url string)

	// Seen returns true if the URL has been marked.
	Seen(url string) bool
}
