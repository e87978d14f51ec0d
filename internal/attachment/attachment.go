package attachment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Prefix is the URL path uploaded files are served under.
const Prefix = "/uploads/"

var ErrTooLarge = errors.New("attachment exceeds the upload size limit")

// Local stores attachments on the local filesystem and serves them back
// through Handler.
type Local struct {
	dir      string
	baseURL  string
	maxBytes int64
}

func NewLocal(dir, baseURL string, maxBytes int64) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	return &Local{
		dir:      dir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

// Upload writes r under a fresh key that keeps the original extension and
// returns the public URL of the stored file.
func (l *Local) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := uuid.New().String() + strings.ToLower(filepath.Ext(filepath.Base(filename)))
	path := filepath.Join(l.dir, key)

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := l.copy(out, r); err != nil {
		out.Close()
		os.Remove(path)

		return "", err
	}

	if err := out.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing file: %w", err)
	}

	return l.baseURL + Prefix + key, nil
}

func (l *Local) copy(w io.Writer, r io.Reader) error {
	if l.maxBytes <= 0 {
		if _, err := io.Copy(w, r); err != nil {
			return fmt.Errorf("writing file: %w", err)
		}

		return nil
	}

	n, err := io.Copy(w, io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	if n > l.maxBytes {
		return ErrTooLarge
	}

	return nil
}

// Handler serves stored files as downloads. Mount it at Prefix. Stored names
// keep the uploader's extension, so nothing is rendered inline.
func (l *Local) Handler() http.Handler {
	files := http.StripPrefix(Prefix, http.FileServer(http.Dir(l.dir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Disposition", "attachment")
		files.ServeHTTP(w, r)
	})
}
