// Package batch converts every post in a blog feed to a draft.
// It coordinates rate-limited fetching, extraction, Markdown conversion,
// draft storage, and file writing across a pool of workers.
package batch

import (
	"context"
	"net/url"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/blogmark"
	"golang.org/x/sync/errgroup"
)

// Runner runs a feed's entries through the convert pipeline.
// Fetcher, Extractor, Converter, Drafts, and Writer are required;
// TokenCounter, Limiter, and Seen are optional.
type Runner struct {
	Fetcher      blogmark.Fetcher
	Extractor    blogmark.Extractor
	Converter    blogmark.Converter
	Drafts       blogmark.DraftService
	Writer       blogmark.DraftWriter
	TokenCounter blogmark.TokenCounter
	Limiter      blogmark.DomainLimiter
	Seen         blogmark.SeenFilter
	Concurrency  int
	RetryDelays  []time.Duration
}

// Result holds the outcome of a batch run.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
	Bytes   int
	Tokens  int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// entryResult holds the outcome of processing a single feed entry.
type entryResult struct {
	url     string
	skipped bool
	bytes   int
	tokens  int
	err     error
}

// Run converts each feed entry to a draft. Entries already seen in this
// run, and entries whose content hash matches an existing draft for the
// same source URL, are skipped. The progress callback, if provided,
// receives events as the run proceeds.
func (r *Runner) Run(ctx context.Context, entries []blogmark.FeedEntry, progress ProgressFunc) (*Result, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	total := len(entries)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan entryResult, total)

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, entry := range entries {
			entry := entry
			g.Go(func() error {
				resultCh <- r.processEntry(gctx, entry, delays)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{}
	for er := range resultCh {
		completed.Add(1)

		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			URL:       er.url,
		}
		switch {
		case er.err != nil:
			result.Failed++
			event.Type = ProgressFailed
			event.Error = er.err
		case er.skipped:
			result.Skipped++
			event.Type = ProgressSkipped
		default:
			result.Saved++
			result.Bytes += er.bytes
			result.Tokens += er.tokens
			event.Type = ProgressCompleted
		}
		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// processEntry runs one feed entry through the pipeline.
func (r *Runner) processEntry(ctx context.Context, entry blogmark.FeedEntry, delays []time.Duration) entryResult {
	if r.Seen != nil {
		if r.Seen.Seen(entry.URL) {
			return entryResult{url: entry.URL, skipped: true}
		}
		r.Seen.Add(entry.URL)
	}

	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx, domainOf(entry.URL)); err != nil {
			return entryResult{url: entry.URL, err: err}
		}
	}

	html, err := FetchWithRetryDelays(ctx, entry.URL, r.Fetcher.Fetch, nil, delays)
	if err != nil {
		return entryResult{url: entry.URL, err: err}
	}

	extracted, err := r.Extractor.Extract(html, entry.URL)
	if err != nil {
		return entryResult{url: entry.URL, err: err}
	}

	title := extracted.Title
	if title == "" {
		title = entry.Title
	}

	contentHTML := blogmark.WrapInArticle(extracted.ContentHTML)
	markdown, err := r.Converter.Convert(contentHTML)
	if err != nil {
		return entryResult{url: entry.URL, err: err}
	}
	if title != "" {
		markdown = "# " + title + "\n\n" + markdown
	}

	hash := ComputeHash(markdown)
	if skip, err := r.unchanged(ctx, entry.URL, hash); err != nil {
		return entryResult{url: entry.URL, err: err}
	} else if skip {
		return entryResult{url: entry.URL, skipped: true}
	}

	tokens := 0
	if r.TokenCounter != nil {
		tokens, err = r.TokenCounter.CountTokens(ctx, markdown)
		if err != nil {
			return entryResult{url: entry.URL, err: err}
		}
	}

	slug := blogmark.Slugify(title)
	if slug == "" {
		slug = blogmark.FallbackSlug(time.Now().UTC())
	}

	draft := &blogmark.Draft{
		Slug:        slug,
		SourceURL:   entry.URL,
		Title:       title,
		Method:      extracted.Method,
		ContentHash: hash,
		CharCount:   utf8.RuneCountInString(markdown),
		TokenCount:  tokens,
	}

	if err := r.Drafts.CreateDraft(ctx, draft); err != nil {
		// Another post may own this slug already; disambiguate once
		// with a hash suffix before giving up.
		if blogmark.ErrorCode(err) != blogmark.ECONFLICT {
			return entryResult{url: entry.URL, err: err}
		}
		draft.Slug = slug + "-" + hash[:min(len(hash), 6)]
		if err := r.Drafts.CreateDraft(ctx, draft); err != nil {
			return entryResult{url: entry.URL, err: err}
		}
	}

	if _, _, err := r.Writer.WriteDraft(ctx, draft, contentHTML, markdown); err != nil {
		return entryResult{url: entry.URL, err: err}
	}

	return entryResult{url: entry.URL, bytes: len(markdown), tokens: tokens}
}

// unchanged reports whether a draft for sourceURL already exists with
// the same content hash.
func (r *Runner) unchanged(ctx context.Context, sourceURL, hash string) (bool, error) {
	existing, err := r.Drafts.FindDrafts(ctx, blogmark.DraftFilter{SourceURL: &sourceURL, Limit: 1})
	if err != nil {
		return false, err
	}
	return len(existing) > 0 && existing[0].ContentHash == hash, nil
}

// domainOf returns the lower-cased host of a URL for rate limiting.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return strings.ToLower(u.Host)
}
