package checks

import (
	"context"
	"fmt"

	"card-timers/core/storage"
	"card-timers/feature/snapshot"

	"github.com/minio/minio-go/v7"
)

// StorageReport is the result of a storage integrity check.
type StorageReport struct {
	Bucket    string `json:"bucket"`
	Exists    bool   `json:"exists"`
	Snapshots int    `json:"snapshots"`
}

// CheckStorage reports whether the snapshot bucket exists and how many snapshots it holds.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return report, nil
	}
	report.Exists = true

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: snapshot.Prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		report.Snapshots++
	}
	return report, nil
}
