package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/blogmark"
	"github.com/fwojciec/blogmark/batch"
	main "github.com/fwojciec/blogmark/cmd/blogmark"
	"github.com/fwojciec/blogmark/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedDeps returns dependencies with a two-entry feed and a runner
// whose pipeline succeeds for any entry.
func feedDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return testPostHTML, nil
		},
	}
	runner := &batch.Runner{
		Fetcher: fetcher,
		Extractor: &mock.Extractor{
			ExtractFn: func(html, sourceURL string) (*blogmark.ExtractResult, error) {
				return &blogmark.ExtractResult{
					Title:       "My Post",
					ContentHTML: "<article><p>hello</p></article>",
					Method:      blogmark.MethodHeuristic,
				}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) { return "hello", nil },
		},
		Drafts: &mock.DraftService{
			CreateDraftFn: func(ctx context.Context, draft *blogmark.Draft) error {
				draft.ID = "id-" + draft.Slug
				return nil
			},
			FindDraftsFn: func(ctx context.Context, filter blogmark.DraftFilter) ([]*blogmark.Draft, error) {
				return nil, nil
			},
		},
		Writer: &mock.DraftWriter{
			WriteDraftFn: func(ctx context.Context, draft *blogmark.Draft, html, markdown string) (string, string, error) {
				return "a.html", "a.md", nil
			},
		},
		RetryDelays: []time.Duration{},
	}

	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Fetcher: fetcher,
		Feeds: &mock.FeedService{
			EntriesFn: func(ctx context.Context, feedURL string, filter *blogmark.URLFilter) ([]blogmark.FeedEntry, error) {
				entries := []blogmark.FeedEntry{
					{URL: "https://example.com/posts/first", Title: "First"},
					{URL: "https://example.com/posts/second", Title: "Second"},
				}
				var out []blogmark.FeedEntry
				for _, e := range entries {
					if filter.Match(e.URL) {
						out = append(out, e)
					}
				}
				return out, nil
			},
		},
		Runner: runner,
	}
}

func TestFeedCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("converts every feed entry", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := feedDeps(stdout, stderr)

		cmd := &main.FeedCmd{URL: "https://example.com/feed.xml"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Found 2 posts")
		assert.Contains(t, output, "Saved 2 drafts, skipped 0, failed 0")
	})

	t.Run("applies include filters", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := feedDeps(stdout, stderr)

		cmd := &main.FeedCmd{URL: "https://example.com/feed.xml", Include: []string{"first"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Found 1 posts")
	})

	t.Run("rejects invalid filter patterns", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := feedDeps(stdout, stderr)

		cmd := &main.FeedCmd{URL: "https://example.com/feed.xml", Include: []string{"["}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, blogmark.EINVALID, blogmark.ErrorCode(err))
		assert.Contains(t, stderr.String(), "invalid include pattern")
	})

	t.Run("reports an empty feed", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := feedDeps(stdout, stderr)
		deps.Feeds = &mock.FeedService{
			EntriesFn: func(ctx context.Context, feedURL string, filter *blogmark.URLFilter) ([]blogmark.FeedEntry, error) {
				return nil, nil
			},
		}

		cmd := &main.FeedCmd{URL: "https://example.com/feed.xml"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "no matching entries")
	})

	t.Run("reports failed entries without aborting", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := feedDeps(stdout, stderr)
		deps.Runner.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if url == "https://example.com/posts/second" {
					return "", blogmark.Errorf(blogmark.EINTERNAL, "fetch failed with status 503")
				}
				return testPostHTML, nil
			},
		}

		cmd := &main.FeedCmd{URL: "https://example.com/feed.xml"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved 1 drafts, skipped 0, failed 1")
		assert.Contains(t, stderr.String(), "skip https://example.com/posts/second")
	})
}
