// Package goquery provides the content extraction engine for blogmark.
// It locates the main article node in a blog page using domain-specific
// CSS selectors with a heuristic scoring fallback, cleans boilerplate
// out of the chosen node, and normalizes highlighted code blocks to
// canonical <pre><code> form.
package goquery

import (
	"strings"

	"github.com/fwojciec/blogmark"
)

var _ blogmark.SelectorRegistry = (*Registry)(nil)

// GenericSelectors are tried for every domain, after any domain-specific
// selectors. They cover the container conventions of common blog themes.
var GenericSelectors = []string{
	"article.post",
	"article.post-block",
	"article.article",
	"div.post-body",
	"div#article-container",
	"div.entry-content",
	"div.post-content",
	"main article",
}

// suffixSelectors pairs a domain suffix with its registered selectors.
type suffixSelectors struct {
	suffix    string
	selectors []string
}

// Registry maps blog domain suffixes to ordered CSS selector lists that
// locate the main article node on sites with known layouts. Lookups are
// pure; the generic fallback list is always appended.
type Registry struct {
	domains []suffixSelectors
	generic []string
}

// NewRegistry creates an empty Registry with the generic fallback list.
func NewRegistry() *Registry {
	generic := make([]string, len(GenericSelectors))
	copy(generic, GenericSelectors)
	return &Registry{generic: generic}
}

// NewDefaultRegistry creates a Registry preloaded with selectors for
// sites with known layouts.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("csdn.net",
		"div.blog-content-box",
		"div#content_views",
		"div.article_content",
	)
	return r
}

// SelectorsFor returns the ordered selectors to try for a domain:
// selectors registered for suffixes the domain ends with, in registration
// order, followed by the generic fallback selectors. An empty domain
// yields only the generic selectors.
func (r *Registry) SelectorsFor(domain string) []string {
	var selectors []string
	for _, d := range r.domains {
		if domain != "" && strings.HasSuffix(domain, d.suffix) {
			selectors = append(selectors, d.selectors...)
		}
	}
	return append(selectors, r.generic...)
}

// Register adds selectors for a domain suffix (e.g. "csdn.net").
// Selectors registered for the same suffix accumulate in order.
func (r *Registry) Register(suffix string, selectors ...string) {
	r.domains = append(r.domains, suffixSelectors{suffix: suffix, selectors: selectors})
}
