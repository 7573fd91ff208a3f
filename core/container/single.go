package container

import (
	"context"
	"fmt"
	"path"

	"gamedata-manager/core/storage"
)

// Single exposes one file as a container with a single member.
type Single struct {
	store    storage.Store
	path     string
	data     []byte
	loaded   bool
	modified bool
}

// NewSingle creates an unloaded container for the file at name.
func NewSingle(store storage.Store, name string) *Single {
	return &Single{store: store, path: name}
}

// Load reads the file once. Later calls are no-ops.
func (c *Single) Load(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	data, err := c.store.ReadFile(ctx, c.path)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.path, err)
	}
	c.data = data
	c.loaded = true
	return nil
}

func (c *Single) Path() string {
	return c.path
}

func (c *Single) Files() ([]string, error) {
	if !c.loaded {
		return nil, fmt.Errorf("%w: %s", ErrNotLoaded, c.path)
	}
	return []string{path.Base(c.path)}, nil
}

func (c *Single) Count() (int, error) {
	if !c.loaded {
		return 0, fmt.Errorf("%w: %s", ErrNotLoaded, c.path)
	}
	return 1, nil
}

func (c *Single) File(i int) ([]byte, error) {
	if !c.loaded {
		return nil, fmt.Errorf("%w: %s", ErrNotLoaded, c.path)
	}
	if err := checkIndex(i, 1); err != nil {
		return nil, err
	}
	return clone(c.data), nil
}

func (c *Single) SetFile(i int, data []byte) error {
	if !c.loaded {
		return fmt.Errorf("%w: %s", ErrNotLoaded, c.path)
	}
	if err := checkIndex(i, 1); err != nil {
		return err
	}
	c.data = clone(data)
	c.modified = true
	return nil
}

func (c *Single) Modified() bool {
	return c.modified
}

func (c *Single) Save(ctx context.Context) error {
	if !c.modified {
		return nil
	}
	if err := c.store.WriteFile(ctx, c.path, c.data); err != nil {
		return fmt.Errorf("save %s: %w", c.path, err)
	}
	c.modified = false
	return nil
}
