package blogmark

import (
	"context"
	"time"
)

// Draft represents a blog post saved as a local Markdown draft.
type Draft struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Method      string    `json:"method"`
	ContentHash string    `json:"contentHash"`
	CharCount   int       `json:"charCount"`
	TokenCount  int       `json:"tokenCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the draft contains invalid fields.
func (d *Draft) Validate() error {
	if d.Slug == "" {
		return Errorf(EINVALID, "draft slug required")
	}
	if d.SourceURL == "" {
		return Errorf(EINVALID, "draft source URL required")
	}
	return nil
}

// DraftService represents a service for managing draft records.
type DraftService interface {
	// CreateDraft creates a new draft record.
	// Returns ECONFLICT if a draft with the same slug already exists.
	CreateDraft(ctx context.Context, draft *Draft) error

	// FindDraftByID retrieves a draft by ID.
	// Returns ENOTFOUND if the draft does not exist.
	FindDraftByID(ctx context.Context, id string) (*Draft, error)

	// FindDrafts retrieves drafts matching the filter.
	FindDrafts(ctx context.Context, filter DraftFilter) ([]*Draft, error)

	// DeleteDraft permanently removes a draft record.
	// Returns ENOTFOUND if the draft does not exist.
	DeleteDraft(ctx context.Context, id string) error
}

// DraftFilter represents a filter for FindDrafts.
type DraftFilter struct {
	ID        *string `json:"id"`
	Slug      *string `json:"slug"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DraftWriter writes draft files to disk.
type DraftWriter interface {
	// WriteDraft writes the extracted HTML snapshot and the Markdown file
	// for a draft and returns the paths written.
	WriteDraft(ctx context.Context, draft *Draft, html, markdown string) (htmlPath, mdPath string, err error)
}
