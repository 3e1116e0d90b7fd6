package mock

import (
	"context"

	"github.com/fwojciec/blogmark"
)

var _ blogmark.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of blogmark.FeedService.
type FeedService struct {
	EntriesFn func(ctx context.Context, feedURL string, filter *blogmark.URLFilter) ([]blogmark.FeedEntry, error)
}

func (s *FeedService) Entries(ctx context.Context, feedURL string, filter *blogmark.URLFilter) ([]blogmark.FeedEntry, error) {
	return s.EntriesFn(ctx, feedURL, filter)
}
