package datacache_test

import (
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"gamedata-manager/core/container"
	"gamedata-manager/core/datacache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memContainer is an in-memory container that counts writes.
type memContainer struct {
	entries  [][]byte
	sets     int
	setErr   error
	countErr error
}

func (m *memContainer) Path() string { return "mem" }

func (m *memContainer) Files() ([]string, error) {
	names := make([]string, len(m.entries))
	for i := range names {
		names[i] = "entry"
	}
	return names, nil
}

func (m *memContainer) Count() (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.entries), nil
}

func (m *memContainer) File(i int) ([]byte, error) {
	out := make([]byte, len(m.entries[i]))
	copy(out, m.entries[i])
	return out, nil
}

func (m *memContainer) SetFile(i int, data []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.entries[i] = data
	return nil
}

func (m *memContainer) Modified() bool                 { return m.sets > 0 }
func (m *memContainer) Save(ctx context.Context) error { return nil }

var _ container.Container = (*memContainer)(nil)

type counter struct {
	Value uint16
}

func readCounter(data []byte) (*counter, error) {
	if len(data) != 2 {
		return nil, errors.New("counter needs 2 bytes")
	}
	return &counter{Value: binary.LittleEndian.Uint16(data)}, nil
}

func writeCounter(c *counter) ([]byte, error) {
	out := make([]byte, 2)
	binary.LittleEndian.PutUint16(out, c.Value)
	return out, nil
}

// countingCodec wraps PerEntry and counts Create/Write calls.
func countingCodec(creates, writes *int) datacache.Codec[[]*counter] {
	inner := datacache.PerEntry(readCounter, writeCounter)
	return datacache.Codec[[]*counter]{
		Create: func(entries [][]byte) ([]*counter, error) {
			*creates++
			return inner.Create(entries)
		},
		Write: func(v []*counter) ([][]byte, error) {
			*writes++
			return inner.Write(v)
		},
	}
}

func TestCache_GetCreatesOnce(t *testing.T) {
	mem := &memContainer{entries: [][]byte{{1, 0}, {2, 0}}}
	var creates, writes int
	cache := datacache.New("move_stats", mem, countingCodec(&creates, &writes))

	assert.False(t, cache.Loaded())
	assert.Equal(t, "move_stats", cache.Name())

	first, err := cache.Get()
	require.NoError(t, err)
	second, err := cache.Get()
	require.NoError(t, err)
	third, err := cache.Get()
	require.NoError(t, err)

	assert.Equal(t, 1, creates)
	assert.True(t, cache.Loaded())
	assert.Same(t, first[0], second[0])
	assert.Same(t, first[1], third[1])
}

func TestCache_SaveWithoutGetIsNoop(t *testing.T) {
	mem := &memContainer{entries: [][]byte{{1, 0}}}
	var creates, writes int
	cache := datacache.New("move_stats", mem, countingCodec(&creates, &writes))

	require.NoError(t, cache.Save())
	assert.Equal(t, 0, creates)
	assert.Equal(t, 0, writes)
	assert.Equal(t, 0, mem.sets)
}

func TestCache_SaveWritesMutations(t *testing.T) {
	mem := &memContainer{entries: [][]byte{{1, 0}, {2, 0}}}
	var creates, writes int
	cache := datacache.New("move_stats", mem, countingCodec(&creates, &writes))

	values, err := cache.Get()
	require.NoError(t, err)
	values[1].Value = 0x0305

	require.NoError(t, cache.Save())
	assert.Equal(t, 1, writes)
	assert.Equal(t, []byte{0x05, 0x03}, mem.entries[1])

	// Saving does not re-create the value.
	again, err := cache.Get()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0305), again[1].Value)
	assert.Equal(t, 1, creates)
}

func TestCache_CreateFailure(t *testing.T) {
	mem := &memContainer{entries: [][]byte{{1, 0}, {2}}}
	cache := datacache.New("learnsets", mem, datacache.PerEntry(readCounter, writeCounter))

	_, err := cache.Get()
	require.Error(t, err)
	assert.ErrorIs(t, err, datacache.ErrMaterializationFailed)
	assert.NotErrorIs(t, err, datacache.ErrPersistFailed)
	assert.Contains(t, err.Error(), "learnsets")

	var cacheErr *datacache.Error
	require.ErrorAs(t, err, &cacheErr)
	assert.Equal(t, "learnsets", cacheErr.Name)
	assert.Equal(t, datacache.OpCreate, cacheErr.Op)
	assert.False(t, cache.Loaded())
}

func TestCache_ContainerFailureOnGet(t *testing.T) {
	mem := &memContainer{countErr: container.ErrFolderNotInitialized}
	cache := datacache.New("evolutions", mem, datacache.PerEntry(readCounter, writeCounter))

	_, err := cache.Get()
	assert.ErrorIs(t, err, datacache.ErrMaterializationFailed)
	assert.ErrorIs(t, err, container.ErrFolderNotInitialized)
}

func TestCache_PersistFailures(t *testing.T) {
	t.Run("WriteError", func(t *testing.T) {
		mem := &memContainer{entries: [][]byte{{1, 0}}}
		codec := datacache.Codec[[]*counter]{
			Create: datacache.PerEntry(readCounter, writeCounter).Create,
			Write: func([]*counter) ([][]byte, error) {
				return nil, errors.New("boom")
			},
		}
		cache := datacache.New("personal_stats", mem, codec)
		_, err := cache.Get()
		require.NoError(t, err)

		err = cache.Save()
		assert.ErrorIs(t, err, datacache.ErrPersistFailed)
		assert.Contains(t, err.Error(), "personal_stats")
	})

	t.Run("EntryCountMismatch", func(t *testing.T) {
		mem := &memContainer{entries: [][]byte{{1, 0}}}
		cache := datacache.New("move_stats", mem, datacache.Codec[[]*counter]{
			Create: datacache.PerEntry(readCounter, writeCounter).Create,
			Write: func([]*counter) ([][]byte, error) {
				return [][]byte{{1, 0}, {2, 0}}, nil
			},
		})
		_, err := cache.Get()
		require.NoError(t, err)

		err = cache.Save()
		assert.ErrorIs(t, err, datacache.ErrPersistFailed)
		assert.Equal(t, 0, mem.sets)
	})

	t.Run("SetFileError", func(t *testing.T) {
		mem := &memContainer{entries: [][]byte{{1, 0}}}
		cache := datacache.New("move_stats", mem, datacache.PerEntry(readCounter, writeCounter))
		_, err := cache.Get()
		require.NoError(t, err)

		mem.setErr = container.ErrIndexOutOfRange
		err = cache.Save()
		assert.ErrorIs(t, err, datacache.ErrPersistFailed)
		assert.ErrorIs(t, err, container.ErrIndexOutOfRange)
	})
}

func TestFirstEntry(t *testing.T) {
	codec := datacache.FirstEntry(readCounter, writeCounter)

	v, err := codec.Create([][]byte{{9, 0}})
	require.NoError(t, err)
	assert.Equal(t, uint16(9), v.Value)

	_, err = codec.Create([][]byte{{9, 0}, {1, 0}})
	assert.Error(t, err)

	out, err := codec.Write(v)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{9, 0}}, out)
}

func TestRoundTrip(t *testing.T) {
	codec := datacache.PerEntry(readCounter, writeCounter)
	raw := [][]byte{{1, 2}, {3, 4}}

	first, err := codec.Create(raw)
	require.NoError(t, err)
	written, err := codec.Write(first)
	require.NoError(t, err)
	second, err := codec.Create(written)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
