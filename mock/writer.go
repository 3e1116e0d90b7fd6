package mock

import (
	"context"

	"github.com/fwojciec/blogmark"
)

var _ blogmark.DraftWriter = (*DraftWriter)(nil)

// DraftWriter is a mock implementation of blogmark.DraftWriter.
type DraftWriter struct {
	WriteDraftFn func(ctx context.Context, draft *blogmark.Draft, html, markdown string) (string, string, error)
}

func (w *DraftWriter) WriteDraft(ctx context.Context, draft *blogmark.Draft, html, markdown string) (string, string, error) {
	return w.WriteDraftFn(ctx, draft, html, markdown)
}
