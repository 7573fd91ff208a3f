package container

import (
	"context"
	"encoding/binary"
	"fmt"

	"gamedata-manager/core/storage"
)

const packHeaderSize = 4

// Pack is an archive file holding many members. Layout, little endian:
//
//	[2]byte identifier | u16 count | (count+1) x u32 offset | member data
//
// Offsets are absolute; member i spans offset[i]..offset[i+1].
type Pack struct {
	store    storage.Store
	path     string
	ident    string
	entries  [][]byte
	loaded   bool
	modified bool
}

// NewPack creates an unloaded pack container for the file at name.
func NewPack(store storage.Store, name string) *Pack {
	return &Pack{store: store, path: name}
}

// Load reads and decodes the archive once. Later calls are no-ops.
func (c *Pack) Load(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	data, err := c.store.ReadFile(ctx, c.path)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.path, err)
	}
	ident, entries, err := DecodePack(data)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.path, err)
	}
	c.ident = ident
	c.entries = entries
	c.loaded = true
	return nil
}

// Identifier returns the two-character archive identifier.
func (c *Pack) Identifier() string {
	return c.ident
}

func (c *Pack) Path() string {
	return c.path
}

func (c *Pack) Files() ([]string, error) {
	if !c.loaded {
		return nil, fmt.Errorf("%w: %s", ErrNotLoaded, c.path)
	}
	names := make([]string, len(c.entries))
	for i := range c.entries {
		names[i] = fmt.Sprintf("%s/%04d", c.path, i)
	}
	return names, nil
}

func (c *Pack) Count() (int, error) {
	if !c.loaded {
		return 0, fmt.Errorf("%w: %s", ErrNotLoaded, c.path)
	}
	return len(c.entries), nil
}

func (c *Pack) File(i int) ([]byte, error) {
	if !c.loaded {
		return nil, fmt.Errorf("%w: %s", ErrNotLoaded, c.path)
	}
	if err := checkIndex(i, len(c.entries)); err != nil {
		return nil, err
	}
	return clone(c.entries[i]), nil
}

func (c *Pack) SetFile(i int, data []byte) error {
	if !c.loaded {
		return fmt.Errorf("%w: %s", ErrNotLoaded, c.path)
	}
	if err := checkIndex(i, len(c.entries)); err != nil {
		return err
	}
	c.entries[i] = clone(data)
	c.modified = true
	return nil
}

func (c *Pack) Modified() bool {
	return c.modified
}

func (c *Pack) Save(ctx context.Context) error {
	if !c.modified {
		return nil
	}
	data, err := EncodePack(c.ident, c.entries)
	if err != nil {
		return fmt.Errorf("save %s: %w", c.path, err)
	}
	if err := c.store.WriteFile(ctx, c.path, data); err != nil {
		return fmt.Errorf("save %s: %w", c.path, err)
	}
	c.modified = false
	return nil
}

// DecodePack splits archive bytes into its identifier and members.
func DecodePack(data []byte) (string, [][]byte, error) {
	if len(data) < packHeaderSize {
		return "", nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrMalformedPack, len(data))
	}

	ident := string(data[0:2])
	count := int(binary.LittleEndian.Uint16(data[2:4]))

	tableEnd := packHeaderSize + (count+1)*4
	if len(data) < tableEnd {
		return "", nil, fmt.Errorf("%w: offset table for %d members is truncated", ErrMalformedPack, count)
	}

	offsets := make([]int, count+1)
	for i := range offsets {
		offsets[i] = int(binary.LittleEndian.Uint32(data[packHeaderSize+i*4:]))
	}

	entries := make([][]byte, count)
	for i := 0; i < count; i++ {
		start, end := offsets[i], offsets[i+1]
		if start < tableEnd || end < start || end > len(data) {
			return "", nil, fmt.Errorf("%w: member %d spans %d..%d", ErrMalformedPack, i, start, end)
		}
		entries[i] = clone(data[start:end])
	}
	return ident, entries, nil
}

// EncodePack builds archive bytes from an identifier and members.
func EncodePack(ident string, entries [][]byte) ([]byte, error) {
	if len(ident) != 2 {
		return nil, fmt.Errorf("pack identifier %q must be 2 bytes", ident)
	}
	if len(entries) > 0xFFFF {
		return nil, fmt.Errorf("pack holds %d members, max is %d", len(entries), 0xFFFF)
	}

	tableEnd := packHeaderSize + (len(entries)+1)*4
	size := tableEnd
	for _, e := range entries {
		size += len(e)
	}

	out := make([]byte, tableEnd, size)
	copy(out[0:2], ident)
	binary.LittleEndian.PutUint16(out[2:4], uint16(len(entries)))

	offset := tableEnd
	for i, e := range entries {
		binary.LittleEndian.PutUint32(out[packHeaderSize+i*4:], uint32(offset))
		offset += len(e)
		out = append(out, e...)
	}
	binary.LittleEndian.PutUint32(out[packHeaderSize+len(entries)*4:], uint32(offset))
	return out, nil
}
