// Package trafilatura provides an alternate extraction engine backed by
// go-trafilatura, for pages where the selector and heuristic engine of
// the goquery package struggles.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/blogmark"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements blogmark.Extractor at compile time.
var _ blogmark.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(sourceURL); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(contentHTML) == "" {
		return nil, blogmark.Errorf(blogmark.ENOTFOUND, "could not locate article content in page")
	}

	return &blogmark.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		Method:      "trafilatura",
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
