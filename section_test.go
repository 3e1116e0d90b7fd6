package blogmark_test

import (
	"testing"

	"github.com/fwojciec/blogmark"
	"github.com/stretchr/testify/assert"
)

func TestExtractSections(t *testing.T) {
	t.Parallel()

	t.Run("extracts H1 heading", func(t *testing.T) {
		t.Parallel()

		markdown := "# Why I Left My Job\n\nSome content here."

		sections := blogmark.ExtractSections(markdown)

		assert.Len(t, sections, 1)
		assert.Equal(t, 1, sections[0].Level)
		assert.Equal(t, "Why I Left My Job", sections[0].Title)
		assert.Equal(t, "why-i-left-my-job", sections[0].Anchor)
	})

	t.Run("extracts H2 through H6 headings", func(t *testing.T) {
		t.Parallel()

		markdown := `# H1 Title
## H2 Title
### H3 Title
#### H4 Title
##### H5 Title
###### H6 Title`

		sections := blogmark.ExtractSections(markdown)

		assert.Len(t, sections, 6)
		for i, s := range sections {
			assert.Equal(t, i+1, s.Level)
		}
	})

	t.Run("handles duplicate headings with numeric suffixes", func(t *testing.T) {
		t.Parallel()

		markdown := `# Example
## Example
### Example`

		sections := blogmark.ExtractSections(markdown)

		assert.Len(t, sections, 3)
		assert.Equal(t, "example", sections[0].Anchor)
		assert.Equal(t, "example-1", sections[1].Anchor)
		assert.Equal(t, "example-2", sections[2].Anchor)
	})

	t.Run("returns empty slice for empty markdown", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, blogmark.ExtractSections(""))
	})

	t.Run("strips special characters from anchors", func(t *testing.T) {
		t.Parallel()

		markdown := "# Shipping v2.0 (finally!)"

		sections := blogmark.ExtractSections(markdown)

		assert.Len(t, sections, 1)
		assert.Equal(t, "shipping-v20-finally", sections[0].Anchor)
	})

	t.Run("ignores code blocks with hash symbols", func(t *testing.T) {
		t.Parallel()

		markdown := `# Real Heading

` + "```bash\n# This is a comment\necho hello\n```" + `

## Another Real Heading`

		sections := blogmark.ExtractSections(markdown)

		assert.Len(t, sections, 2)
		assert.Equal(t, "Real Heading", sections[0].Title)
		assert.Equal(t, "Another Real Heading", sections[1].Title)
	})
}
