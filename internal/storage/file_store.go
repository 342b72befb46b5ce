package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/cleanstreet/complaint-service/internal/config"
)

// FileStore persists uploaded complaint images and returns their public URL.
type FileStore interface {
	Store(filename string, content io.Reader) (string, error)
}

type localFileStore struct {
	dir       string
	publicURL string
}

// NewLocalFileStore creates the upload directory and returns a disk-backed
// store. Stored names are UUID-prefixed so re-uploads never collide.
func NewLocalFileStore(cfg config.UploadConfig) (FileStore, error) {
	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localFileStore{dir: dir, publicURL: strings.TrimRight(cfg.PublicURL, "/")}, nil
}

func (s *localFileStore) Store(filename string, content io.Reader) (string, error) {
	name := uuid.NewString() + "_" + filepath.Base(filename)
	if strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid file name %q", filename)
	}

	target := filepath.Join(s.dir, name)
	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("store file %s: %w", name, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, content); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("store file %s: %w", name, err)
	}
	return s.publicURL + "/" + name, nil
}
