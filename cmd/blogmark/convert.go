package main

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/blogmark"
	"github.com/fwojciec/blogmark/batch"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	defer deps.Fetcher.Close()

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmark.ErrorMessage(err))
		return err
	}

	extracted, err := deps.Extractor.Extract(html, c.URL)
	if err != nil {
		if blogmark.ErrorCode(err) == blogmark.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Hint: try --engine readability or --engine trafilatura")
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmark.ErrorMessage(err))
		return err
	}

	contentHTML := blogmark.WrapInArticle(extracted.ContentHTML)
	markdown, err := deps.Converter.Convert(contentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmark.ErrorMessage(err))
		return err
	}

	if c.TOC {
		if toc := blogmark.FormatTOC(blogmark.ExtractSections(markdown)); toc != "" {
			markdown = toc + "\n" + markdown
		}
	}
	if extracted.Title != "" {
		markdown = "# " + extracted.Title + "\n\n" + markdown
	}

	tokens := 0
	if deps.TokenCounter != nil {
		if tokens, err = deps.TokenCounter.CountTokens(deps.Ctx, markdown); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", blogmark.ErrorMessage(err))
			return err
		}
	}

	slug := blogmark.Slugify(extracted.Title)
	if slug == "" {
		slug = blogmark.FallbackSlug(time.Now().UTC())
	}

	// Force mode: delete any existing draft with the same slug first
	if c.Force {
		existing, err := deps.Drafts.FindDrafts(deps.Ctx, blogmark.DraftFilter{Slug: &slug})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", blogmark.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deps.Drafts.DeleteDraft(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", blogmark.ErrorMessage(err))
				return err
			}
		}
	}

	draft := &blogmark.Draft{
		Slug:        slug,
		SourceURL:   c.URL,
		Title:       extracted.Title,
		Method:      extracted.Method,
		ContentHash: batch.ComputeHash(markdown),
		CharCount:   utf8.RuneCountInString(markdown),
		TokenCount:  tokens,
	}

	if err := deps.Drafts.CreateDraft(deps.Ctx, draft); err != nil {
		if blogmark.ErrorCode(err) == blogmark.ECONFLICT {
			fmt.Fprintf(deps.Stderr, "error: draft %q already exists. Use --force to replace it.\n", slug)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmark.ErrorMessage(err))
		return err
	}

	_, mdPath, err := deps.Writer.WriteDraft(deps.Ctx, draft, contentHTML, markdown)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved draft %q (%s)\n", draft.Slug, draft.ID)
	fmt.Fprintf(deps.Stdout, "  %s\n", mdPath)
	fmt.Fprintf(deps.Stdout, "  method: %s, ~%d chars\n", draft.Method, draft.CharCount)
	if deps.TokenCounter != nil {
		fmt.Fprintf(deps.Stdout, "  %s\n", batch.FormatTokens(tokens))
	}

	return nil
}
