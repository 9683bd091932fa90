package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Store saves uploaded files and returns a URL path the frontend can fetch.
type Store interface {
	Save(subdir string, file *multipart.FileHeader) (string, error)
}

// LocalStore writes uploads under a root directory on the local filesystem
// and maps them to URL paths under a base URL (the classic MEDIA_ROOT /
// MEDIA_URL split).
type LocalStore struct {
	root    string
	baseURL string
}

// NewLocalStore creates a LocalStore rooted at dir, serving under baseURL.
func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{
		root:    dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Save writes the uploaded file into root/subdir with a timestamped name to
// avoid collisions, and returns its public URL path.
func (s *LocalStore) Save(subdir string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media dir: %w", err)
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return path.Join(s.baseURL, subdir, name), nil
}
