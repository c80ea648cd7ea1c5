package service

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// FileStore keeps uploaded certificate files on local disk
type FileStore struct {
	dir      string
	maxBytes int64
}

var ErrFileTooLarge = errors.New("uploaded file is too large")

// NewFileStore stores files under dir, creating it if needed
func NewFileStore(dir string, maxBytes int64) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating upload dir %s", dir)
	}
	return &FileStore{dir: dir, maxBytes: maxBytes}, nil
}

// Save writes r as "<userID>-<uuid><ext>" and returns the stored name
func (s *FileStore) Save(userID, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(strings.ReplaceAll(originalName, `\`, "/"))))
	name := userID + "-" + uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errors.Wrap(err, "creating upload file")
	}
	defer f.Close()

	src := r
	if s.maxBytes > 0 {
		src = io.LimitReader(r, s.maxBytes+1)
	}
	n, err := io.Copy(f, src)
	if err == nil && s.maxBytes > 0 && n > s.maxBytes {
		err = ErrFileTooLarge
	}
	if err != nil {
		f.Close()
		os.Remove(filepath.Join(s.dir, name))
		return "", errors.Wrap(err, "writing upload file")
	}
	return name, nil
}

// Open opens a stored file for reading
func (s *FileStore) Open(name string) (*os.File, error) {
	f, err := os.Open(s.path(name))
	return f, errors.Wrapf(err, "opening %s", name)
}

// Remove deletes a stored file; a missing file is not an error
func (s *FileStore) Remove(name string) error {
	err := os.Remove(s.path(name))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing %s", name)
	}
	return nil
}

// path confines name to the store directory
func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
