package goquery

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogmark"
)

// minSelectorTextLen is the minimum collapsed text length a selector
// match must have before it is accepted. It rejects near-empty template
// shells that happen to match a generic selector. Empirically chosen;
// tunable, not a guarantee.
const minSelectorTextLen = 150

// Ensure Extractor implements blogmark.Extractor at compile time.
var _ blogmark.Extractor = (*Extractor)(nil)

// Extractor locates the main article content in a blog page.
// Domain-specific selectors are tried first, then generic selectors,
// then heuristic scoring. The winning node is cleaned of boilerplate
// and its code blocks are normalized before rendering.
type Extractor struct {
	registry blogmark.SelectorRegistry
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRegistry sets the selector registry used for known site layouts.
// Defaults to NewDefaultRegistry() if not specified.
func WithRegistry(r blogmark.SelectorRegistry) Option {
	return func(e *Extractor) {
		e.registry = r
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = NewDefaultRegistry()
	}
	return e
}

// Extract processes raw HTML and returns the main article content.
// The source URL selects domain-specific extraction rules. Returns an
// ENOTFOUND error when no selector matches with sufficient text and no
// heuristic candidate scores above the confidence threshold.
func (e *Extractor) Extract(rawHTML, sourceURL string) (*blogmark.ExtractResult, error) {
	if rawHTML == "" {
		return nil, blogmark.Errorf(blogmark.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, blogmark.Errorf(blogmark.EINVALID, "failed to parse HTML: %v", err)
	}

	title := extractTitle(doc)

	content, method := e.locateContent(doc, sourceURL)
	if content == nil {
		return nil, blogmark.Errorf(blogmark.ENOTFOUND, "could not locate article content in page")
	}

	CleanContent(content)
	NormalizeCodeBlocks(content)

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, err
	}

	return &blogmark.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
		Method:      method,
	}, nil
}

// locateContent returns the most likely article node and the method label
// describing which strategy found it. Selector order matters: domain
// selectors are tried strictly before generic ones, and generic ones
// strictly before heuristic scoring.
func (e *Extractor) locateContent(doc *goquery.Document, sourceURL string) (*goquery.Selection, string) {
	domain := domainOf(sourceURL)

	for _, selector := range e.registry.SelectorsFor(domain) {
		node := doc.Find(selector).First()
		if node.Length() > 0 && textLength(node) > minSelectorTextLen {
			return node, "selector:" + selector
		}
	}

	if node := heuristicPick(doc); node != nil {
		return node, blogmark.MethodHeuristic
	}

	return nil, ""
}

// domainOf returns the lower-cased host component of a URL, or "" if the
// URL cannot be parsed.
func domainOf(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

// textLength returns the rune count of a node's whitespace-collapsed,
// space-joined text.
func textLength(s *goquery.Selection) int {
	return utf8.RuneCountInString(collapseText(s))
}

// collapseText extracts a node's text with runs of whitespace collapsed
// to single spaces and surrounding whitespace trimmed.
func collapseText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// extractTitle returns the page title: the <title> text, else the first
// <h1>, else "Untitled".
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if h1 := collapseText(doc.Find("h1").First()); h1 != "" {
		return h1
	}
	return "Untitled"
}
