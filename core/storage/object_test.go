package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"gamedata-manager/core/storage"
	"gamedata-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectStore(t *testing.T) {
	ctx := context.Background()

	t.Run("ReadFile", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "games", "gg/romfs/bin/a.bin", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte{7, 8})), nil)

		store := storage.NewObjectStore(mockClient, "games", "/gg/romfs/")
		data, err := store.ReadFile(ctx, "bin/a.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte{7, 8}, data)
		mockClient.AssertExpectations(t)
	})

	t.Run("ReadFileMissing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		notFound := minio.ErrorResponse{Code: "NoSuchKey", Message: "missing"}
		mockClient.On("GetObject", mock.Anything, "games", "bin/a.bin", mock.Anything).
			Return(nil, notFound)

		store := storage.NewObjectStore(mockClient, "games", "")
		_, err := store.ReadFile(ctx, "bin/a.bin")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("WriteFile", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "games", "gg/romfs/bin/a.bin", mock.Anything, int64(3), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		store := storage.NewObjectStore(mockClient, "games", "gg/romfs")
		err := store.WriteFile(ctx, "bin/a.bin", []byte{1, 2, 3})
		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("WriteFileError", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "games", "bin/a.bin", mock.Anything, int64(1), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("denied"))

		store := storage.NewObjectStore(mockClient, "games", "")
		err := store.WriteFile(ctx, "bin/a.bin", []byte{1})
		assert.Error(t, err)
	})

	t.Run("ReadDir", func(t *testing.T) {
		mockClient := new(mocks.Client)
		ch := make(chan minio.ObjectInfo, 3)
		ch <- minio.ObjectInfo{Key: "gg/romfs/bin/message/b.dat"}
		ch <- minio.ObjectInfo{Key: "gg/romfs/bin/message/sub/"}
		ch <- minio.ObjectInfo{Key: "gg/romfs/bin/message/a.dat"}
		close(ch)

		mockClient.On("ListObjects", mock.Anything, "games", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "gg/romfs/bin/message/" && !opts.Recursive
		})).Return((<-chan minio.ObjectInfo)(ch))

		store := storage.NewObjectStore(mockClient, "games", "gg/romfs")
		names, err := store.ReadDir(ctx, "bin/message")
		require.NoError(t, err)
		assert.Equal(t, []string{"a.dat", "b.dat"}, names)
	})

	t.Run("ReadDirEmpty", func(t *testing.T) {
		mockClient := new(mocks.Client)
		ch := make(chan minio.ObjectInfo)
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "games", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		store := storage.NewObjectStore(mockClient, "games", "")
		_, err := store.ReadDir(ctx, "bin/message")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Exists", func(t *testing.T) {
		mockClient := new(mocks.Client)
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Key: "gg/exefs/main"}
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "games", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "gg/exefs/main" && opts.MaxKeys == 1
		})).Return((<-chan minio.ObjectInfo)(ch))

		store := storage.NewObjectStore(mockClient, "games", "gg/exefs")
		ok, err := store.Exists(ctx, "main")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("ExistsPrefixOnly", func(t *testing.T) {
		mockClient := new(mocks.Client)
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Key: "gg/exefs/main.npdm"}
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "games", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		store := storage.NewObjectStore(mockClient, "games", "gg/exefs")
		ok, err := store.Exists(ctx, "main")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
