// pkg/cli/root.go
package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bstardust/photoplace/internal/config"
	"github.com/bstardust/photoplace/internal/logger"
	"github.com/bstardust/photoplace/internal/placestore"
)

// unknownLocation is printed when resolution yields no place. A
// presentation convention of this CLI, not a core guarantee.
const unknownLocation = "Unknown location"

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Error loading configuration: %v", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "photoplace",
		Short: "Extract photo capture metadata and resolve it to a named place",
		Long:  `Reads capture time and GPS position from an image's EXIF metadata and resolves the position to a human-meaningful place using a bundled local dataset. No network access is needed for resolution.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cfg.Store.Path, "db", cfg.Store.Path, "Path to the places dataset (default: ~/.photoplace/"+placestore.DefaultFilename()+")")

	// Add commands
	rootCmd.AddCommand(newExtractCommand(cfg))
	rootCmd.AddCommand(newResolveCommand(cfg))
	rootCmd.AddCommand(newValidateCommand(cfg))
	rootCmd.AddCommand(newFetchDBCommand(cfg))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("Error executing command: %v", err)
		os.Exit(1)
	}
}

// storePath resolves the dataset location: flag/config value first,
// then the conventional per-user path, then the current directory.
func storePath(cfg *config.Config) string {
	if cfg.Store.Path != "" {
		return cfg.Store.Path
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".photoplace", placestore.DefaultFilename())
	}
	return placestore.DefaultFilename()
}
