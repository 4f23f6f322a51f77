package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	apperrors "schooldir/internal/errors"
)

// PublicImagePath is the URL prefix under which locally stored images are
// served.
const PublicImagePath = "/schoolImages"

// LocalStore writes images to a directory served as static files.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed and returns a store
// over it.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &apperrors.StorageError{Op: "mkdir", Err: err}
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the directory images are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Save(ctx context.Context, originalName, contentType string, r io.Reader) (string, error) {
	name := ObjectName(originalName)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", &apperrors.StorageError{Op: "create", Err: err}
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", &apperrors.StorageError{Op: "write", Err: err}
	}

	return PublicImagePath + "/" + name, nil
}

// Delete removes a previously stored image by its public path reference.
// Only the base name is used, so references cannot escape the upload dir.
func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	name := path.Base(ref)
	if name == "." || name == "/" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return &apperrors.StorageError{Op: "delete", Err: err}
	}
	return nil
}
