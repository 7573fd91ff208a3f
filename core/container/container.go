package container

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
)

var (
	// ErrFolderNotInitialized is returned when folder members are accessed before Initialize.
	ErrFolderNotInitialized = errors.New("folder not initialized")
	// ErrFolderAlreadyInitialized is returned by a second Initialize call.
	ErrFolderAlreadyInitialized = errors.New("folder already initialized")
	// ErrNotLoaded is returned when a file container is accessed before Load.
	ErrNotLoaded = errors.New("container not loaded")
	// ErrIndexOutOfRange is returned for member indices outside the container.
	ErrIndexOutOfRange = errors.New("member index out of range")
	// ErrMalformedPack is returned when pack bytes cannot be decoded.
	ErrMalformedPack = errors.New("malformed pack")
)

// Container is a handle over the raw bytes of one file or a set of files.
type Container interface {
	// Path returns the store-relative location of the container.
	Path() string
	// Files returns the member names in member order.
	Files() ([]string, error)
	// Count returns the number of members.
	Count() (int, error)
	// File returns a copy of the bytes of member i.
	File(i int) ([]byte, error)
	// SetFile replaces the bytes of member i.
	SetFile(i int, data []byte) error
	// Modified reports whether any member changed since the last load or save.
	Modified() bool
	// Save persists modified members to the backing store.
	Save(ctx context.Context) error
}

// Filter selects folder members by file name.
type Filter func(name string) bool

// ByExtension matches names with the given extension, e.g. ".dat".
func ByExtension(ext string) Filter {
	return func(name string) bool {
		return strings.EqualFold(path.Ext(name), ext)
	}
}

// ByStem matches names whose base name without extension equals stem.
func ByStem(stem string) Filter {
	return func(name string) bool {
		return strings.TrimSuffix(name, path.Ext(name)) == stem
	}
}

func checkIndex(i, count int) error {
	if i < 0 || i >= count {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, count)
	}
	return nil
}

func clone(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
