// Package storesync downloads the pre-built place dataset from
// S3-compatible storage. The dataset itself is produced elsewhere;
// this only distributes the published artifact to the local path the
// resolver reads from.
package storesync

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/bstardust/photoplace/internal/config"
	"github.com/bstardust/photoplace/internal/logger"
)

// Fetch downloads cfg.Object from cfg.Bucket to destPath,
// overwriting any previous copy.
func Fetch(ctx context.Context, cfg config.FetchConfig, destPath string) error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("S3 endpoint is required")
	}
	if cfg.Bucket == "" {
		return fmt.Errorf("S3 bucket name is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return fmt.Errorf("S3 access key and secret key are required")
	}
	if cfg.Object == "" {
		return fmt.Errorf("dataset object name is required")
	}

	// Remove protocol prefix if present
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       cfg.UseSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupAuto,
	})
	if err != nil {
		return fmt.Errorf("failed to create S3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", cfg.Bucket)
	}

	logger.Info("Downloading dataset %s from bucket %s at %s", cfg.Object, cfg.Bucket, endpoint)

	if err := client.FGetObject(ctx, cfg.Bucket, cfg.Object, destPath, minio.GetObjectOptions{}); err != nil {
		return fmt.Errorf("failed to download dataset: %w", err)
	}

	logger.Info("Dataset written to %s", destPath)
	return nil
}
