package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bstardust/photoplace/internal/config"
	"github.com/bstardust/photoplace/internal/exif"
	"github.com/bstardust/photoplace/internal/logger"
	"github.com/bstardust/photoplace/internal/placestore"
	"github.com/bstardust/photoplace/internal/resolver"
)

func newExtractCommand(cfg *config.Config) *cobra.Command {
	var resolve bool

	cmd := &cobra.Command{
		Use:   "extract [flags] <image>",
		Short: "Extract capture time and GPS position from an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, cfg, args[0], resolve)
		},
	}

	cmd.Flags().BoolVar(&resolve, "resolve", false, "Also resolve the GPS position to a named place")

	return cmd
}

func runExtract(cmd *cobra.Command, cfg *config.Config, path string, resolve bool) error {
	logger.SetLevel(cfg.LogLevel)

	meta := exif.Extract(path)

	out := cmd.OutOrStdout()
	if meta.Timestamp != nil {
		fmt.Fprintf(out, "timestamp: %s\n", *meta.Timestamp)
	} else {
		fmt.Fprintln(out, "timestamp: unknown")
	}
	if meta.HasPosition() {
		fmt.Fprintf(out, "position: %.6f, %.6f\n", *meta.Lat, *meta.Lon)
	} else {
		fmt.Fprintln(out, "position: unknown")
	}

	if !resolve {
		return nil
	}

	if !meta.HasPosition() {
		fmt.Fprintf(out, "location: %s\n", unknownLocation)
		return nil
	}

	ctx := cmd.Context()
	store, err := placestore.Open(ctx, storePath(cfg))
	if err != nil {
		return fmt.Errorf("failed to open place store: %w", err)
	}
	defer store.Close()

	place, err := resolver.ReverseGeocode(ctx, store, *meta.Lat, *meta.Lon)
	if err != nil {
		return fmt.Errorf("reverse geocoding failed: %w", err)
	}

	if place == nil {
		fmt.Fprintf(out, "location: %s\n", unknownLocation)
	} else {
		fmt.Fprintf(out, "location: %s\n", place.DisplayString())
	}
	return nil
}
