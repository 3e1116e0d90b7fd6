// Package readability provides an alternate extraction engine backed by
// go-readability, for pages where the selector and heuristic engine of
// the goquery package struggles.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/blogmark"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements blogmark.Extractor at compile time.
var _ blogmark.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML, sourceURL string) (*blogmark.ExtractResult, error) {
	if rawHTML == "" {
		return nil, blogmark.Errorf(blogmark.EINVALID, "empty HTML input")
	}

	pageURL, err := url.Parse(sourceURL)
	if err != nil {
		pageURL = nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(article.Content) == "" {
		return nil, blogmark.Errorf(blogmark.ENOTFOUND, "could not locate article content in page")
	}

	return &blogmark.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Method:      "readability",
	}, nil
}
