package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/blogmark"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ blogmark.DraftService = (*DraftService)(nil)

// DraftService implements blogmark.DraftService using SQLite.
type DraftService struct {
	db *DB
}

// NewDraftService creates a new DraftService.
func NewDraftService(db *DB) *DraftService {
	return &DraftService{db: db}
}

// CreateDraft creates a new draft record. The ID and creation time are
// assigned here. Returns ECONFLICT if a draft with the same slug exists.
func (s *DraftService) CreateDraft(ctx context.Context, draft *blogmark.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	draft.ID = uuid.New().String()
	draft.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO drafts (id, slug, source_url, title, method, content_hash, char_count, token_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, draft.ID, draft.Slug, draft.SourceURL, draft.Title, draft.Method, draft.ContentHash,
		draft.CharCount, draft.TokenCount, draft.CreatedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return blogmark.Errorf(blogmark.ECONFLICT, "draft with slug %q already exists", draft.Slug)
	}
	return err
}

// FindDraftByID retrieves a draft by ID.
// Returns ENOTFOUND if the draft does not exist.
func (s *DraftService) FindDraftByID(ctx context.Context, id string) (*blogmark.Draft, error) {
	var draft blogmark.Draft
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, slug, source_url, title, method, content_hash, char_count, token_count, created_at
		FROM drafts
		WHERE id = ?
	`, id).Scan(&draft.ID, &draft.Slug, &draft.SourceURL, &draft.Title, &draft.Method,
		&draft.ContentHash, &draft.CharCount, &draft.TokenCount, &createdAt)

	if err == sql.ErrNoRows {
		return nil, blogmark.Errorf(blogmark.ENOTFOUND, "draft not found")
	}
	if err != nil {
		return nil, err
	}

	draft.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &draft, nil
}

// FindDrafts retrieves drafts matching the filter, newest first.
func (s *DraftService) FindDrafts(ctx context.Context, filter blogmark.DraftFilter) ([]*blogmark.Draft, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, slug, source_url, title, method, content_hash, char_count, token_count, created_at FROM drafts WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drafts []*blogmark.Draft
	for rows.Next() {
		var draft blogmark.Draft
		var createdAt string

		if err := rows.Scan(&draft.ID, &draft.Slug, &draft.SourceURL, &draft.Title, &draft.Method,
			&draft.ContentHash, &draft.CharCount, &draft.TokenCount, &createdAt); err != nil {
			return nil, err
		}

		draft.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		drafts = append(drafts, &draft)
	}

	return drafts, rows.Err()
}

// DeleteDraft permanently removes a draft record.
// Returns ENOTFOUND if the draft does not exist.
func (s *DraftService) DeleteDraft(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM drafts WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return blogmark.Errorf(blogmark.ENOTFOUND, "draft not found")
	}
	return nil
}
