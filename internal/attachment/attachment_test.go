package attachment_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/campus/internal/attachment"
)

func TestLocal_Upload(t *testing.T) {
	dir := t.TempDir()

	l, err := attachment.NewLocal(dir, "http://localhost:8080/", 16)
	require.NoError(t, err)

	t.Run("Stores and serves the file", func(t *testing.T) {
		url, err := l.Upload(context.Background(), "Receipt.PDF", strings.NewReader("%PDF-1.7"))
		require.NoError(t, err)

		require.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"), url)
		assert.True(t, strings.HasSuffix(url, ".pdf"), url)

		path := strings.TrimPrefix(url, "http://localhost:8080")

		rec := httptest.NewRecorder()
		l.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body, _ := io.ReadAll(rec.Body)
		assert.Equal(t, "%PDF-1.7", string(body))
	})

	t.Run("Served as a download", func(t *testing.T) {
		url, err := l.Upload(context.Background(), "page.html", strings.NewReader("<script>"))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		l.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, strings.TrimPrefix(url, "http://localhost:8080"), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "attachment", rec.Header().Get("Content-Disposition"))
	})

	t.Run("Rejects oversized files", func(t *testing.T) {
		before, err := os.ReadDir(dir)
		require.NoError(t, err)

		_, err = l.Upload(context.Background(), "big.png", strings.NewReader(strings.Repeat("x", 17)))
		assert.ErrorIs(t, err, attachment.ErrTooLarge)

		after, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("Directory names are ignored", func(t *testing.T) {
		url, err := l.Upload(context.Background(), "../../etc/passwd", strings.NewReader("x"))
		require.NoError(t, err)
		assert.NotContains(t, strings.TrimPrefix(url, "http://localhost:8080/uploads/"), "/")
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := l.Upload(ctx, "a.txt", strings.NewReader("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
