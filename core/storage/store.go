package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrNotFound is returned when a file does not exist in the store.
var ErrNotFound = errors.New("file not found")

// Store reads and writes whole files relative to a root.
// Names always use forward slashes.
type Store interface {
	// Root returns the location the store is rooted at.
	Root() string
	// ReadFile returns the full contents of a file.
	ReadFile(ctx context.Context, name string) ([]byte, error)
	// WriteFile replaces the contents of a file.
	WriteFile(ctx context.Context, name string, data []byte) error
	// ReadDir returns the sorted names of the regular files directly under dir.
	ReadDir(ctx context.Context, dir string) ([]string, error)
	// Exists reports whether a regular file exists.
	Exists(ctx context.Context, name string) (bool, error)
}

// Opener opens a Store rooted at the given location.
type Opener func(root string) (Store, error)

// NewOpener returns the Opener for the configured backend.
func NewOpener(cfg Config) (Opener, error) {
	switch cfg.Backend {
	case BackendLocal, "":
		return func(root string) (Store, error) {
			return NewLocalStore(root)
		}, nil
	case BackendObject:
		client, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return func(root string) (Store, error) {
			return NewObjectStore(client, cfg.Bucket, root), nil
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Backend)
	}
}

// cleanName normalizes a store-relative name and rejects escapes from the root.
func cleanName(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	cleaned := path.Clean("/" + name)
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" {
		return "", errors.New("empty file name")
	}
	return cleaned, nil
}
