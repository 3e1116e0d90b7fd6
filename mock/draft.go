package mock

import (
	"context"

	"github.com/fwojciec/blogmark"
)

var _ blogmark.DraftService = (*DraftService)(nil)

// DraftService is a mock implementation of blogmark.DraftService.
type DraftService struct {
	CreateDraftFn   func(ctx context.Context, draft *blogmark.Draft) error
	FindDraftByIDFn func(ctx context.Context, id string) (*blogmark.Draft, error)
	FindDraftsFn    func(ctx context.Context, filter blogmark.DraftFilter) ([]*blogmark.Draft, error)
	DeleteDraftFn   func(ctx context.Context, id string) error
}

func (s *DraftService) CreateDraft(ctx context.Context, draft *blogmark.Draft) error {
	return s.CreateDraftFn(ctx, draft)
}

func (s *DraftService) FindDraftByID(ctx context.Context, id string) (*blogmark.Draft, error) {
	return s.FindDraftByIDFn(ctx, id)
}

func (s *DraftService) FindDrafts(ctx context.Context, filter blogmark.DraftFilter) ([]*blogmark.Draft, error) {
	return s.FindDraftsFn(ctx, filter)
}

func (s *DraftService) DeleteDraft(ctx context.Context, id string) error {
	return s.DeleteDraftFn(ctx, id)
}
