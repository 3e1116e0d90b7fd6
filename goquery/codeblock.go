package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NormalizeCodeBlocks rewrites highlighted code markup inside a content
// node into canonical <pre><code class="language-X"> form, in place.
//
// Site highlighters wrap code in per-line elements with gutter columns
// for line numbers; extracting their text naively loses line boundaries
// or interleaves gutter digits. Each recognized wrapper is replaced with
// a plain pre/code pair holding the reconstructed text. Plain <pre>
// elements are then normalized so every code region has a <code> child
// with clean text.
func NormalizeCodeBlocks(content *goquery.Selection) {
	content.Find(".highlight, .codeblock").Each(func(_ int, wrapper *goquery.Selection) {
		wrapper.Find(".gutter").Remove()

		language := detectLanguageClass(wrapper)
		codeSection := wrapper
		if code := wrapper.Find(".code").First(); code.Length() > 0 {
			codeSection = code
		}
		text := cleanCodeText(extractCodeText(codeSection))

		wrapper.Empty()
		wrapper.AppendNodes(buildPreCode(language, text))
	})

	content.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		code := pre.Find("code").First()
		if code.Length() == 0 {
			text := cleanCodeText(extractCodeText(pre))
			node := &html.Node{Type: html.ElementNode, DataAtom: atom.Code, Data: "code"}
			node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
			pre.Empty()
			pre.AppendNodes(node)
			return
		}
		// Re-extraction guards against stray inline markup inside the code.
		code.SetText(cleanCodeText(extractCodeText(code)))
	})
}

// detectLanguageClass returns the language token from a wrapper class
// with a "language-" or "lang-" prefix, or "" if none is present.
func detectLanguageClass(wrapper *goquery.Selection) string {
	for _, class := range strings.Fields(wrapper.AttrOr("class", "")) {
		if token, ok := strings.CutPrefix(class, "language-"); ok {
			return token
		}
		if token, ok := strings.CutPrefix(class, "lang-"); ok {
			return token
		}
	}
	return ""
}

// extractCodeText extracts code from a container while respecting
// highlighter line structure. Line-break elements become literal
// newlines. When the container marks individual lines with a "line"
// class, each line's text is taken verbatim (no trimming) and joined
// with newlines; otherwise the container's full text is returned with
// no separator and no trimming.
func extractCodeText(section *goquery.Selection) string {
	section.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: "\n"})
	})

	lineNodes := section.Find(".line")
	if lineNodes.Length() > 0 {
		lines := make([]string, 0, lineNodes.Length())
		lineNodes.Each(func(_ int, line *goquery.Selection) {
			lines = append(lines, line.Text())
		})
		return strings.Join(lines, "\n")
	}
	return section.Text()
}

// cleanCodeText right-trims trailing whitespace from every line and
// strips leading and trailing blank lines from the whole block, leaving
// intentional leading indentation untouched.
func cleanCodeText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// buildPreCode constructs a <pre><code> pair holding text as a literal
// text node. Nodes are built directly so the code text is never
// re-parsed as HTML.
func buildPreCode(language, text string) *html.Node {
	pre := &html.Node{Type: html.ElementNode, DataAtom: atom.Pre, Data: "pre"}
	code := &html.Node{Type: html.ElementNode, DataAtom: atom.Code, Data: "code"}
	if language != "" {
		code.Attr = []html.Attribute{{Key: "class", Val: "language-" + language}}
	}
	code.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	pre.AppendChild(code)
	return pre
}
