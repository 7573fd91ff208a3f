package datacache

import (
	"fmt"

	"gamedata-manager/core/container"
)

// Cache lazily materializes a value of type T from a container.
type Cache[T any] struct {
	name      string
	container container.Container
	codec     Codec[T]

	value  T
	loaded bool
}

// New binds a container to a codec. Nothing is read until Get.
func New[T any](name string, c container.Container, codec Codec[T]) *Cache[T] {
	return &Cache[T]{
		name:      name,
		container: c,
		codec:     codec,
	}
}

// Name returns the label used in errors, usually the file identifier.
func (c *Cache[T]) Name() string {
	return c.name
}

// Container returns the bound container.
func (c *Cache[T]) Container() container.Container {
	return c.container
}

// Loaded reports whether the value has been materialized.
func (c *Cache[T]) Loaded() bool {
	return c.loaded
}

// Get returns the cached value, creating it from the container on first use.
// A failed create leaves the cache empty so a later Get tries again.
func (c *Cache[T]) Get() (T, error) {
	if c.loaded {
		return c.value, nil
	}

	var zero T
	entries, err := c.entries()
	if err != nil {
		return zero, &Error{Name: c.name, Op: OpCreate, Err: err}
	}

	value, err := c.codec.Create(entries)
	if err != nil {
		return zero, &Error{Name: c.name, Op: OpCreate, Err: err}
	}

	c.value = value
	c.loaded = true
	return c.value, nil
}

// Save serializes the cached value back into the container. It does nothing
// when the value was never materialized. The container itself is persisted by
// its own Save.
func (c *Cache[T]) Save() error {
	if !c.loaded {
		return nil
	}

	entries, err := c.codec.Write(c.value)
	if err != nil {
		return &Error{Name: c.name, Op: OpWrite, Err: err}
	}

	count, err := c.container.Count()
	if err != nil {
		return &Error{Name: c.name, Op: OpWrite, Err: err}
	}
	if len(entries) != count {
		return &Error{Name: c.name, Op: OpWrite, Err: fmt.Errorf("serialized %d entries, container holds %d", len(entries), count)}
	}

	for i, data := range entries {
		if err := c.container.SetFile(i, data); err != nil {
			return &Error{Name: c.name, Op: OpWrite, Err: err}
		}
	}
	return nil
}

func (c *Cache[T]) entries() ([][]byte, error) {
	count, err := c.container.Count()
	if err != nil {
		return nil, err
	}
	entries := make([][]byte, count)
	for i := range entries {
		data, err := c.container.File(i)
		if err != nil {
			return nil, err
		}
		entries[i] = data
	}
	return entries, nil
}
