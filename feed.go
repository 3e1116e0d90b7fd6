package blogmark

import (
	"context"
	"regexp"
)

// FeedEntry is a single post discovered in a blog feed.
type FeedEntry struct {
	URL   string
	Title string
}

// FeedService discovers post URLs from a blog's RSS or Atom feed.
type FeedService interface {
	// Entries returns the posts advertised by the feed at feedURL.
	// If feedURL points at an HTML page rather than a feed, the feed is
	// located via <link rel="alternate"> autodiscovery.
	//
	// The filter can be used to include/exclude entries by URL pattern.
	// If filter is nil, all entries are returned.
	Entries(ctx context.Context, feedURL string, filter *URLFilter) ([]FeedEntry, error)
}

// URLFilter specifies patterns for including/excluding URLs.
type URLFilter struct {
	// Include patterns - if set, only URLs matching at least one pattern are included.
	Include []*regexp.Regexp

	// Exclude patterns - URLs matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// Match returns true if the URL passes the filter.
// If the filter is nil, all URLs pass.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	// If include patterns exist, URL must match at least one
	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Check exclude patterns
	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}
