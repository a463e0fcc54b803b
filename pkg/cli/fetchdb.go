package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bstardust/photoplace/internal/config"
	"github.com/bstardust/photoplace/internal/logger"
	"github.com/bstardust/photoplace/internal/placestore"
	"github.com/bstardust/photoplace/internal/storesync"
)

func newFetchDBCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch-db",
		Short: "Download the published places dataset from S3-compatible storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetchDB(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Fetch.Endpoint, "endpoint", cfg.Fetch.Endpoint, "S3 endpoint URL (required)")
	cmd.Flags().StringVar(&cfg.Fetch.Region, "region", cfg.Fetch.Region, "S3 region")
	cmd.Flags().StringVar(&cfg.Fetch.Bucket, "bucket", cfg.Fetch.Bucket, "S3 bucket name (required)")
	cmd.Flags().StringVar(&cfg.Fetch.AccessKey, "access-key", cfg.Fetch.AccessKey, "S3 access key (required)")
	cmd.Flags().StringVar(&cfg.Fetch.SecretKey, "secret-key", cfg.Fetch.SecretKey, "S3 secret key (required)")
	cmd.Flags().BoolVar(&cfg.Fetch.UseSSL, "use-ssl", cfg.Fetch.UseSSL, "Use SSL for S3 connection")
	cmd.Flags().StringVar(&cfg.Fetch.Object, "object", cfg.Fetch.Object, "Dataset object name (default: "+placestore.DefaultFilename()+")")

	return cmd
}

func runFetchDB(cmd *cobra.Command, cfg *config.Config) error {
	logger.SetLevel(cfg.LogLevel)

	if cfg.Fetch.Object == "" {
		cfg.Fetch.Object = placestore.DefaultFilename()
	}

	dest := storePath(cfg)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	ctx := cmd.Context()
	if err := storesync.Fetch(ctx, cfg.Fetch, dest); err != nil {
		return err
	}

	// Reject an incompatible download immediately rather than on
	// first use.
	if err := placestore.Validate(ctx, dest); err != nil {
		return fmt.Errorf("downloaded dataset failed validation: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "dataset ready at %s\n", dest)
	return nil
}
