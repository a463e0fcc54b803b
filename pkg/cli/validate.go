package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bstardust/photoplace/internal/config"
	"github.com/bstardust/photoplace/internal/logger"
	"github.com/bstardust/photoplace/internal/placestore"
)

func newValidateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the places dataset is readable and schema-compatible",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetLevel(cfg.LogLevel)

			path := storePath(cfg)
			if err := placestore.Validate(cmd.Context(), path); err != nil {
				return fmt.Errorf("dataset at %s is not usable: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dataset at %s is compatible (engine schema %s)\n", path, placestore.EngineVersion)
			return nil
		},
	}
}
