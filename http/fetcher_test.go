package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/blogmark"
	blogmarkhttp "github.com/fwojciec/blogmark/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements blogmark.Fetcher at compile time.
var _ blogmark.Fetcher = (*blogmarkhttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns page body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		f := blogmarkhttp.NewFetcher()
		defer f.Close()

		got, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, got, "hello")
	})

	t.Run("sends browser user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := blogmarkhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, blogmarkhttp.DefaultUserAgent, gotUA)
	})

	t.Run("user agent can be overridden", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := blogmarkhttp.NewFetcher(blogmarkhttp.WithUserAgent("blogmark-test/1.0"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "blogmark-test/1.0", gotUA)
	})

	t.Run("transcodes declared non-UTF-8 charset", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			_, _ = w.Write([]byte{'c', 'a', 'f', 0xe9}) // "café" in latin-1
		}))
		defer srv.Close()

		f := blogmarkhttp.NewFetcher()
		defer f.Close()

		got, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "café", got)
	})

	t.Run("non-200 responses are internal errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		}))
		defer srv.Close()

		f := blogmarkhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, blogmark.EINTERNAL, blogmark.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		f := blogmarkhttp.NewFetcher()
		defer f.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.Fetch(ctx, srv.URL)

		assert.Error(t, err)
	})
}
