package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/blogmark"
	"github.com/fwojciec/blogmark/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure DraftService implements blogmark.DraftService at compile time.
var _ blogmark.DraftService = (*sqlite.DraftService)(nil)

// mustOpenDB returns an open in-memory database, closed on cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newDraft(slug string) *blogmark.Draft {
	return &blogmark.Draft{
		Slug:        slug,
		SourceURL:   "https://example.com/" + slug,
		Title:       "Post " + slug,
		Method:      "heuristic",
		ContentHash: "abc123",
		CharCount:   1200,
	}
}

func TestDraftService_CreateDraft(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and creation time", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDraftService(mustOpenDB(t))
		draft := newDraft("hello-world")

		err := svc.CreateDraft(context.Background(), draft)

		require.NoError(t, err)
		assert.NotEmpty(t, draft.ID)
		assert.False(t, draft.CreatedAt.IsZero())
	})

	t.Run("rejects duplicate slug with conflict", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDraftService(mustOpenDB(t))
		require.NoError(t, svc.CreateDraft(context.Background(), newDraft("hello-world")))

		err := svc.CreateDraft(context.Background(), newDraft("hello-world"))

		require.Error(t, err)
		assert.Equal(t, blogmark.ECONFLICT, blogmark.ErrorCode(err))
	})

	t.Run("rejects invalid draft", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDraftService(mustOpenDB(t))
		draft := newDraft("hello-world")
		draft.SourceURL = ""

		err := svc.CreateDraft(context.Background(), draft)

		require.Error(t, err)
		assert.Equal(t, blogmark.EINVALID, blogmark.ErrorCode(err))
	})
}

func TestDraftService_FindDraftByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDraftService(mustOpenDB(t))
		draft := newDraft("hello-world")
		draft.TokenCount = 321
		require.NoError(t, svc.CreateDraft(context.Background(), draft))

		got, err := svc.FindDraftByID(context.Background(), draft.ID)

		require.NoError(t, err)
		assert.Equal(t, draft.Slug, got.Slug)
		assert.Equal(t, draft.SourceURL, got.SourceURL)
		assert.Equal(t, draft.Title, got.Title)
		assert.Equal(t, draft.Method, got.Method)
		assert.Equal(t, draft.ContentHash, got.ContentHash)
		assert.Equal(t, draft.CharCount, got.CharCount)
		assert.Equal(t, draft.TokenCount, got.TokenCount)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDraftService(mustOpenDB(t))

		_, err := svc.FindDraftByID(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, blogmark.ENOTFOUND, blogmark.ErrorCode(err))
	})
}

func TestDraftService_FindDrafts(t *testing.T) {
	t.Parallel()

	t.Run("filters by slug and source URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDraftService(mustOpenDB(t))
		require.NoError(t, svc.CreateDraft(context.Background(), newDraft("first")))
		require.NoError(t, svc.CreateDraft(context.Background(), newDraft("second")))

		slug := "first"
		bySlug, err := svc.FindDrafts(context.Background(), blogmark.DraftFilter{Slug: &slug})
		require.NoError(t, err)
		require.Len(t, bySlug, 1)
		assert.Equal(t, "first", bySlug[0].Slug)

		sourceURL := "https://example.com/second"
		byURL, err := svc.FindDrafts(context.Background(), blogmark.DraftFilter{SourceURL: &sourceURL})
		require.NoError(t, err)
		require.Len(t, byURL, 1)
		assert.Equal(t, "second", byURL[0].Slug)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDraftService(mustOpenDB(t))
		for _, slug := range []string{"a", "b", "c"} {
			require.NoError(t, svc.CreateDraft(context.Background(), newDraft(slug)))
		}

		page, err := svc.FindDrafts(context.Background(), blogmark.DraftFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page, 2)

		rest, err := svc.FindDrafts(context.Background(), blogmark.DraftFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})

	t.Run("returns empty result without error", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDraftService(mustOpenDB(t))

		drafts, err := svc.FindDrafts(context.Background(), blogmark.DraftFilter{})

		require.NoError(t, err)
		assert.Empty(t, drafts)
	})
}

func TestDraftService_DeleteDraft(t *testing.T) {
	t.Parallel()

	t.Run("removes the draft", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDraftService(mustOpenDB(t))
		draft := newDraft("doomed")
		require.NoError(t, svc.CreateDraft(context.Background(), draft))

		require.NoError(t, svc.DeleteDraft(context.Background(), draft.ID))

		_, err := svc.FindDraftByID(context.Background(), draft.ID)
		assert.Equal(t, blogmark.ENOTFOUND, blogmark.ErrorCode(err))
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDraftService(mustOpenDB(t))

		err := svc.DeleteDraft(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, blogmark.ENOTFOUND, blogmark.ErrorCode(err))
	})
}
