package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"charge-finder/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// RequiredFolders lists the prefixes that must exist in the bucket.
var RequiredFolders = []string{"snapshots"}

// StorageReport is the result of a storage check.
type StorageReport struct {
	Bucket       string   `json:"bucket"`
	BucketExists bool     `json:"bucket_exists"`
	Missing      []string `json:"missing"`
}

// OK reports whether nothing is missing.
func (r StorageReport) OK() bool {
	return r.BucketExists && len(r.Missing) == 0
}

// CheckStructure reports whether the bucket and its folders exist. A
// missing bucket is reported, not returned as an error.
func CheckStructure(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, Missing: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		report.Missing = append(report.Missing, RequiredFolders...)
		return report, nil
	}
	report.BucketExists = true

	for _, folder := range RequiredFolders {
		opts := minio.ListObjectsOptions{
			Prefix:    folderKey(folder),
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("list %s: %w", folder, obj.Err)
			}
			found = true
			break
		}
		if !found {
			report.Missing = append(report.Missing, folder)
		}
	}

	return report, nil
}

// FixStructure creates the bucket if needed and a marker object for each
// missing folder.
func FixStructure(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger, missing []string) error {
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		return err
	}
	for _, folder := range missing {
		_, err := client.PutObject(ctx, bucket, folderKey(folder), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func folderKey(folder string) string {
	if !strings.HasSuffix(folder, "/") {
		folder += "/"
	}
	return folder
}
