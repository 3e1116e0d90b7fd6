package goquery_test

import (
	"testing"

	pq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogmark/goquery"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCodeBlocks_HighlightWrappers(t *testing.T) {
	t.Parallel()

	t.Run("reconstructs line elements with one newline per line", func(t *testing.T) {
		t.Parallel()

		node := contentNode(t, `<div id="c"><figure class="highlight">
			<div class="code"><span class="line">a</span><span class="line">  b</span><span class="line">c  </span></div>
		</figure></div>`, "#c")

		goquery.NormalizeCodeBlocks(node)

		code := node.Find("pre > code")
		assert.Equal(t, 1, code.Length())
		assert.Equal(t, "a\n  b\nc", code.Text())
	})

	t.Run("removes gutter line numbers before extraction", func(t *testing.T) {
		t.Parallel()

		node := contentNode(t, `<div id="c"><figure class="highlight">
			<div class="gutter"><span class="line">1</span><span class="line">2</span></div>
			<div class="code"><span class="line">x := 1</span><span class="line">y := 2</span></div>
		</figure></div>`, "#c")

		goquery.NormalizeCodeBlocks(node)

		assert.Equal(t, "x := 1\ny := 2", node.Find("pre > code").Text())
		assert.Equal(t, 0, node.Find(".gutter").Length())
	})

	t.Run("detects language from wrapper class", func(t *testing.T) {
		t.Parallel()

		node := contentNode(t, `<div id="c">
			<div class="highlight language-go"><pre>fmt.Println("hi")</pre></div>
			<div class="codeblock lang-python"><pre>print("hi")</pre></div>
		</div>`, "#c")

		goquery.NormalizeCodeBlocks(node)

		classes := node.Find("pre > code").Map(func(_ int, s *pq.Selection) string {
			return s.AttrOr("class", "")
		})
		assert.Equal(t, []string{"language-go", "language-python"}, classes)
	})

	t.Run("omits class when no language token present", func(t *testing.T) {
		t.Parallel()

		node := contentNode(t, `<div id="c"><div class="highlight"><pre>code here</pre></div></div>`, "#c")

		goquery.NormalizeCodeBlocks(node)

		code := node.Find("pre > code")
		_, exists := code.Attr("class")
		assert.False(t, exists)
		assert.Equal(t, "code here", code.Text())
	})

	t.Run("uses wrapper text when no code sub-element exists", func(t *testing.T) {
		t.Parallel()

		node := contentNode(t, `<div id="c"><div class="highlight">plain   text</div></div>`, "#c")

		goquery.NormalizeCodeBlocks(node)

		assert.Equal(t, "plain   text", node.Find("pre > code").Text())
	})

	t.Run("converts br elements to newlines", func(t *testing.T) {
		t.Parallel()

		node := contentNode(t, `<div id="c"><div class="codeblock">first<br>second<br>third</div></div>`, "#c")

		goquery.NormalizeCodeBlocks(node)

		assert.Equal(t, "first\nsecond\nthird", node.Find("pre > code").Text())
	})
}

func TestNormalizeCodeBlocks_PlainPre(t *testing.T) {
	t.Parallel()

	t.Run("synthesizes code child stripping trailing blank lines", func(t *testing.T) {
		t.Parallel()

		node := contentNode(t, "<div id=\"c\"><pre>x\n\n</pre></div>", "#c")

		goquery.NormalizeCodeBlocks(node)

		assert.Equal(t, "<pre><code>x</code></pre>", render(t, node.Find("pre")))
	})

	t.Run("preserves leading indentation while trimming line ends", func(t *testing.T) {
		t.Parallel()

		node := contentNode(t, "<div id=\"c\"><pre>\nfunc main() {   \n\tgo run()\t\n}\n</pre></div>", "#c")

		goquery.NormalizeCodeBlocks(node)

		assert.Equal(t, "func main() {\n\tgo run()\n}", node.Find("pre > code").Text())
	})

	t.Run("re-extracts existing code child dropping inline markup", func(t *testing.T) {
		t.Parallel()

		node := contentNode(t, `<div id="c"><pre><code><span class="kw">var</span> x = 1  </code></pre></div>`, "#c")

		goquery.NormalizeCodeBlocks(node)

		code := node.Find("pre > code")
		assert.Equal(t, "var x = 1", code.Text())
		assert.Equal(t, 0, code.Find("span").Length())
	})
}
