package blogmark

// SelectorRegistry maps blog domains to the CSS selectors that locate the
// main article node on sites with known layouts.
type SelectorRegistry interface {
	// SelectorsFor returns the ordered selectors to try for a domain:
	// lists registered for domain suffixes the given domain ends with, in
	// registration order, followed by the generic fallback selectors.
	// An empty domain yields only the generic selectors.
	SelectorsFor(domain string) []string

	// Register adds selectors for a domain suffix (e.g. "csdn.net").
	// Selectors registered for the same suffix accumulate in order.
	Register(domain string, selectors ...string)
}
