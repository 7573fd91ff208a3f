package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ObjectStore is a Store over a key prefix in an S3/MinIO bucket.
type ObjectStore struct {
	client Client
	bucket string
	prefix string
}

// NewObjectStore builds a store whose root is prefix inside bucket.
func NewObjectStore(client Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(strings.ReplaceAll(prefix, "\\", "/"), "/"),
	}
}

func (s *ObjectStore) Root() string {
	return s.bucket + "/" + s.prefix
}

func (s *ObjectStore) ReadFile(ctx context.Context, name string) ([]byte, error) {
	key, err := s.key(name)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.mapError(name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.mapError(name, err)
	}
	return data, nil
}

func (s *ObjectStore) WriteFile(ctx context.Context, name string, data []byte) error {
	key, err := s.key(name)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

func (s *ObjectStore) ReadDir(ctx context.Context, dir string) ([]string, error) {
	key, err := s.key(dir)
	if err != nil {
		return nil, err
	}
	prefix := key + "/"

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		// Common prefixes (sub folders) end with a slash.
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		names = append(names, path.Base(obj.Key))
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
	}
	sort.Strings(names)
	return names, nil
}

func (s *ObjectStore) Exists(ctx context.Context, name string) (bool, error) {
	key, err := s.key(name)
	if err != nil {
		return false, err
	}

	opts := minio.ListObjectsOptions{
		Prefix:    key,
		Recursive: false,
		MaxKeys:   1,
	}

	found := false
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to stat %s: %w", key, obj.Err)
		}
		if obj.Key == key {
			found = true
		}
		break
	}
	return found, nil
}

func (s *ObjectStore) key(name string) (string, error) {
	cleaned, err := cleanName(name)
	if err != nil {
		return "", err
	}
	if s.prefix == "" {
		return cleaned, nil
	}
	return s.prefix + "/" + cleaned, nil
}

func (s *ObjectStore) mapError(name string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("failed to read %s: %w", name, err)
}
