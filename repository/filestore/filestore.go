// Package filestore persists uploaded files under slash-separated keys such as
// "uploads/products/1700000000000-ab12cd34.png".
package filestore

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

var (
	ErrNotExist   = errors.New("file does not exist")
	ErrInvalidKey = errors.New("invalid file key")
)

type FileStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Open returns ErrNotExist when nothing is stored under key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete succeeds when the key is already gone.
	Delete(ctx context.Context, key string) error
}

// CleanKey rejects keys that are empty, absolute or escape the store root.
func CleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
