package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bstardust/photoplace/internal/config"
	"github.com/bstardust/photoplace/internal/logger"
	"github.com/bstardust/photoplace/internal/placestore"
	"github.com/bstardust/photoplace/internal/resolver"
)

func newResolveCommand(cfg *config.Config) *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "resolve --lat <latitude> --lon <longitude>",
		Short: "Resolve a coordinate to the best-matching named place",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, cfg, lat, lon)
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in decimal degrees (required)")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude in decimal degrees (required)")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lon")

	return cmd
}

func runResolve(cmd *cobra.Command, cfg *config.Config, lat, lon float64) error {
	logger.SetLevel(cfg.LogLevel)

	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %f out of valid range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude %f out of valid range [-180, 180]", lon)
	}

	ctx := cmd.Context()
	store, err := placestore.Open(ctx, storePath(cfg))
	if err != nil {
		return fmt.Errorf("failed to open place store: %w", err)
	}
	defer store.Close()

	place, err := resolver.ReverseGeocode(ctx, store, lat, lon)
	if err != nil {
		return fmt.Errorf("reverse geocoding failed: %w", err)
	}

	if place == nil {
		fmt.Fprintln(cmd.OutOrStdout(), unknownLocation)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), place.DisplayString())
	}
	return nil
}
