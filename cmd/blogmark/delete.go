package main

import (
	"fmt"

	"github.com/fwojciec/blogmark"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return blogmark.Errorf(blogmark.EINVALID, "use --force to confirm deletion")
	}

	draft, err := deps.Drafts.FindDraftByID(deps.Ctx, c.ID)
	if err != nil {
		if blogmark.ErrorCode(err) == blogmark.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: draft %q not found. Use 'blogmark list' to see saved drafts.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmark.ErrorMessage(err))
		return err
	}

	if err := deps.Drafts.DeleteDraft(deps.Ctx, draft.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted draft %q\n", draft.Slug)
	return nil
}
