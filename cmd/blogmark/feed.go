package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/blogmark"
	"github.com/fwojciec/blogmark/batch"
)

// Run executes the feed command.
func (c *FeedCmd) Run(deps *Dependencies) error {
	defer deps.Fetcher.Close()

	// Compile filters to URLFilter (validates regex patterns early)
	filter, err := compileFilter(c.Include, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmark.ErrorMessage(err))
		return err
	}

	entries, err := deps.Feeds.Entries(deps.Ctx, c.URL, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogmark.ErrorMessage(err))
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "Feed has no matching entries.")
		return nil
	}

	// Apply user-specified concurrency
	if c.Concurrency > 0 {
		deps.Runner.Concurrency = c.Concurrency
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d posts\n", event.Total)
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n",
				event.Completed, event.Total, batch.TruncateURL(event.URL, 60))
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case batch.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := deps.Runner.Run(deps.Ctx, entries, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error converting feed: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d drafts, skipped %d, failed %d (%s",
		result.Saved, result.Skipped, result.Failed, batch.FormatBytes(result.Bytes))
	if deps.TokenCounter != nil {
		fmt.Fprintf(deps.Stdout, ", %s", batch.FormatTokens(result.Tokens))
	}
	fmt.Fprintln(deps.Stdout, ")")

	return nil
}

// compileFilter builds a URLFilter from include/exclude regex patterns.
// Returns nil if no patterns are given.
func compileFilter(include, exclude []string) (*blogmark.URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}

	filter := &blogmark.URLFilter{}
	for _, pattern := range include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, blogmark.Errorf(blogmark.EINVALID, "invalid include pattern %q: %v", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, blogmark.Errorf(blogmark.EINVALID, "invalid exclude pattern %q: %v", pattern, err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return filter, nil
}
