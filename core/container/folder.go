package container

import (
	"context"
	"fmt"

	"gamedata-manager/core/storage"
)

// Folder is a directory of files. Its member list is chosen once, by the
// filter given to Initialize, and stays fixed for the folder's lifetime.
type Folder struct {
	store       storage.Store
	path        string
	initialized bool
	names       []string
	entries     [][]byte
	dirty       []bool
}

// NewFolder creates an uninitialized folder container for the directory at name.
func NewFolder(store storage.Store, name string) *Folder {
	return &Folder{store: store, path: name}
}

// Initialize lists the directory, keeps the members accepted by filter (all
// members when filter is nil) and reads their bytes. It may run only once.
func (f *Folder) Initialize(ctx context.Context, filter Filter) error {
	if f.initialized {
		return fmt.Errorf("%w: %s", ErrFolderAlreadyInitialized, f.path)
	}

	all, err := f.store.ReadDir(ctx, f.path)
	if err != nil {
		return fmt.Errorf("list %s: %w", f.path, err)
	}

	var names []string
	var entries [][]byte
	for _, name := range all {
		if filter != nil && !filter(name) {
			continue
		}
		data, err := f.store.ReadFile(ctx, f.path+"/"+name)
		if err != nil {
			return fmt.Errorf("load %s/%s: %w", f.path, name, err)
		}
		names = append(names, name)
		entries = append(entries, data)
	}

	f.names = names
	f.entries = entries
	f.dirty = make([]bool, len(names))
	f.initialized = true
	return nil
}

// Initialized reports whether Initialize has run.
func (f *Folder) Initialized() bool {
	return f.initialized
}

func (f *Folder) Path() string {
	return f.path
}

func (f *Folder) Files() ([]string, error) {
	if !f.initialized {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotInitialized, f.path)
	}
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names, nil
}

func (f *Folder) Count() (int, error) {
	if !f.initialized {
		return 0, fmt.Errorf("%w: %s", ErrFolderNotInitialized, f.path)
	}
	return len(f.names), nil
}

func (f *Folder) File(i int) ([]byte, error) {
	if !f.initialized {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotInitialized, f.path)
	}
	if err := checkIndex(i, len(f.entries)); err != nil {
		return nil, err
	}
	return clone(f.entries[i]), nil
}

// Index returns the member index of name.
func (f *Folder) Index(name string) (int, error) {
	if !f.initialized {
		return -1, fmt.Errorf("%w: %s", ErrFolderNotInitialized, f.path)
	}
	for i, n := range f.names {
		if n == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%s has no member %q", f.path, name)
}

func (f *Folder) SetFile(i int, data []byte) error {
	if !f.initialized {
		return fmt.Errorf("%w: %s", ErrFolderNotInitialized, f.path)
	}
	if err := checkIndex(i, len(f.entries)); err != nil {
		return err
	}
	f.entries[i] = clone(data)
	f.dirty[i] = true
	return nil
}

func (f *Folder) Modified() bool {
	for _, d := range f.dirty {
		if d {
			return true
		}
	}
	return false
}

// Save writes each modified member back to its own file.
func (f *Folder) Save(ctx context.Context) error {
	for i, d := range f.dirty {
		if !d {
			continue
		}
		name := f.path + "/" + f.names[i]
		if err := f.store.WriteFile(ctx, name, f.entries[i]); err != nil {
			return fmt.Errorf("save %s: %w", name, err)
		}
		f.dirty[i] = false
	}
	return nil
}
