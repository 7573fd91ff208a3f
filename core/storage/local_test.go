package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gamedata-manager/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := storage.NewLocalStore(root)
	require.NoError(t, err)

	t.Run("WriteThenRead", func(t *testing.T) {
		err := store.WriteFile(ctx, "bin/pokelib/waza_data.bin", []byte{1, 2, 3})
		require.NoError(t, err)

		data, err := store.ReadFile(ctx, "bin/pokelib/waza_data.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, data)
	})

	t.Run("ReadMissing", func(t *testing.T) {
		_, err := store.ReadFile(ctx, "bin/missing.bin")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("EscapeStaysInsideRoot", func(t *testing.T) {
		err := store.WriteFile(ctx, "../../outside.bin", []byte{9})
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(root, "outside.bin"))
		assert.NoError(t, err)
	})

	t.Run("ReadDirListsOnlyFiles", func(t *testing.T) {
		dir := filepath.Join(root, "bin", "message")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.dat"), nil, 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.dat"), nil, 0o644))

		names, err := store.ReadDir(ctx, "bin/message")
		require.NoError(t, err)
		assert.Equal(t, []string{"a.dat", "b.dat"}, names)
	})

	t.Run("ReadDirMissing", func(t *testing.T) {
		_, err := store.ReadDir(ctx, "bin/nowhere")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Exists", func(t *testing.T) {
		require.NoError(t, store.WriteFile(ctx, "exists/file.bin", []byte{1}))

		ok, err := store.Exists(ctx, "exists/file.bin")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Exists(ctx, "exists")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = store.Exists(ctx, "exists/none.bin")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("NoTempFilesLeft", func(t *testing.T) {
		require.NoError(t, store.WriteFile(ctx, "tmpcheck/file.bin", []byte("x")))
		names, err := store.ReadDir(ctx, "tmpcheck")
		require.NoError(t, err)
		assert.Equal(t, []string{"file.bin"}, names)
	})
}

func TestNewLocalStore(t *testing.T) {
	t.Run("EmptyRoot", func(t *testing.T) {
		_, err := storage.NewLocalStore("")
		assert.Error(t, err)
	})

	t.Run("MissingRoot", func(t *testing.T) {
		_, err := storage.NewLocalStore(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("RootIsFile", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		_, err := storage.NewLocalStore(file)
		assert.Error(t, err)
	})
}
