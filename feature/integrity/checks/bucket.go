package checks

import (
	"context"
	"fmt"

	"gamedata-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketReport is the result of a bucket check.
type BucketReport struct {
	Bucket string   `json:"bucket"`
	Exists bool     `json:"exists"`
	Roots  []string `json:"roots"`
}

// CheckBucket verifies the bucket exists and lists the install roots stored
// at its top level.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) (*BucketReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	report := &BucketReport{Bucket: bucket, Exists: exists, Roots: []string{}}
	if !exists {
		return report, nil
	}

	opts := minio.ListObjectsOptions{Recursive: false}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, obj.Err)
		}
		report.Roots = append(report.Roots, obj.Key)
	}
	return report, nil
}
