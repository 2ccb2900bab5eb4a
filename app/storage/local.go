package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// BlobStore is the save-and-get-path contract for uploaded images. Save
// persists the stream and returns the public reference path; Placeholder is
// the reference substituted when no file was uploaded.
type BlobStore interface {
	Save(file multipart.File, header *multipart.FileHeader) (string, error)
	Placeholder() string
}

// LocalStore writes uploads to a directory that the HTTP surface serves back
// under the public path.
type LocalStore struct {
	dir         string
	publicPath  string
	placeholder string
}

func NewLocalStore(dir, publicPath, placeholder string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, publicPath: publicPath, placeholder: placeholder}, nil
}

// Save stores the upload under a fresh uuid name so concurrent uploads of
// identically named files never collide.
func (s *LocalStore) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(dst, file); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("close upload: %w", err)
	}
	return path.Join(s.publicPath, name), nil
}

func (s *LocalStore) Placeholder() string { return s.placeholder }
