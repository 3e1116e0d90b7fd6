// Package fs writes drafts to disk as HTML snapshots and Markdown files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/blogmark"
)

// FormatDraft formats a draft's Markdown with YAML frontmatter.
func FormatDraft(draft *blogmark.Draft, markdown string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(draft.Title)
	b.WriteString("\nsource_url: ")
	b.WriteString(draft.SourceURL)
	b.WriteString("\nmethod: ")
	b.WriteString(draft.Method)
	b.WriteString("\ncreated_at: ")
	b.WriteString(draft.CreatedAt.Format(time.RFC3339))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	return b.String()
}

// Ensure Writer implements blogmark.DraftWriter at compile time.
var _ blogmark.DraftWriter = (*Writer)(nil)

// Writer writes draft files under a base directory, one subdirectory
// per draft: <base>/<slug>/<slug>.html and <base>/<slug>/<slug>.md.
type Writer struct {
	baseDir  string
	htmlPath string
	mdPath   string
}

// Option configures a Writer.
type Option func(*Writer)

// WithHTMLPath overrides the HTML snapshot output path.
func WithHTMLPath(path string) Option {
	return func(w *Writer) {
		w.htmlPath = path
	}
}

// WithMarkdownPath overrides the Markdown output path.
func WithMarkdownPath(path string) Option {
	return func(w *Writer) {
		w.mdPath = path
	}
}

// NewWriter creates a new Writer that writes below the given base directory.
func NewWriter(baseDir string, opts ...Option) *Writer {
	w := &Writer{baseDir: baseDir}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteDraft writes the extracted HTML snapshot and the Markdown file
// for a draft and returns the paths written. The Markdown file carries
// YAML frontmatter recording the draft's provenance.
func (w *Writer) WriteDraft(ctx context.Context, draft *blogmark.Draft, html, markdown string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	if err := draft.Validate(); err != nil {
		return "", "", err
	}

	htmlPath := w.htmlPath
	if htmlPath == "" {
		htmlPath = filepath.Join(w.baseDir, draft.Slug, draft.Slug+".html")
	}
	mdPath := w.mdPath
	if mdPath == "" {
		mdPath = filepath.Join(w.baseDir, draft.Slug, draft.Slug+".md")
	}

	if err := writeFile(htmlPath, html); err != nil {
		return "", "", err
	}
	if err := writeFile(mdPath, FormatDraft(draft, markdown)); err != nil {
		return "", "", err
	}

	return htmlPath, mdPath, nil
}

// writeFile writes content atomically: a temp file in the target
// directory renamed into place, so a crashed run never leaves a
// half-written draft.
func writeFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".blogmark-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
