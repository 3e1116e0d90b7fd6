package main

import (
	"fmt"

	"github.com/fwojciec/blogmark"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	drafts, err := deps.Drafts.FindDrafts(deps.Ctx, blogmark.DraftFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmark.ErrorMessage(err))
		return err
	}

	if len(drafts) == 0 {
		fmt.Fprintln(deps.Stdout, "No drafts found. Use 'blogmark convert' to create one.")
		return nil
	}

	for _, d := range drafts {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", d.ID, d.Slug, d.SourceURL)
	}

	return nil
}
