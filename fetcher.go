package blogmark

import "context"

// Fetcher retrieves HTML pages from URLs.
type Fetcher interface {
	// Fetch downloads the page and returns its body as UTF-8 HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
