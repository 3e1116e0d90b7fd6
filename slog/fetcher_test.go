package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/blogmark/mock"
	blogslog "github.com/fwojciec/blogmark/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with size and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>hello</html>", nil
			},
		}

		f := blogslog.NewLoggingFetcher(inner, logger)
		html, err := f.Fetch(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.NotEmpty(t, html)
		output := buf.String()
		assert.Contains(t, output, "page fetch")
		assert.Contains(t, output, "url=https://example.com/post")
		assert.Contains(t, output, "bytes=18")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		f := blogslog.NewLoggingFetcher(inner, logger)
		_, err := f.Fetch(context.Background(), "https://example.com/post")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("close delegates to wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{CloseFn: func() error {
			closed = true
			return nil
		}}

		f := blogslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler))
		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
