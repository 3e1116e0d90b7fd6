package blogmark

import "strings"

// MethodHeuristic is the Method label recorded when heuristic scoring
// located the content. Selector-based extraction records
// "selector:<css selector>" with the winning selector instead.
const MethodHeuristic = "heuristic"

// ExtractResult holds the extracted content from a blog post page.
type ExtractResult struct {
	// Title is the post title, taken from the <title> element or the
	// first <h1> when the title is missing.
	Title string

	// ContentHTML is the main article content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads, comments) has been removed
	// and code blocks are normalized to <pre><code class="language-X">.
	ContentHTML string

	// Method records which strategy located the content node.
	Method string
}

// WrapInArticle wraps extracted content HTML in an <article> element
// unless the content node already is one. Markdown converters treat
// <article> as the document body.
func WrapInArticle(html string) string {
	if strings.HasPrefix(strings.TrimSpace(html), "<article") {
		return html
	}
	return "<article>\n" + html + "\n</article>"
}

// Extractor extracts the main article content from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The source URL selects domain-specific extraction rules.
	// Returns ENOTFOUND if no article content could be located.
	Extract(html, sourceURL string) (*ExtractResult, error)
}
