package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ilexagri/website/internal/catalog"
)

var (
	verbose    bool
	catalogDir string
)

var rootCmd = &cobra.Command{
	Use:   "ilexweb",
	Short: "Ilex crop nutrition website",
	Long: `ilexweb serves the Ilex product catalogue website and offers a few
helpers for working with the product data.

Run without a sub-command to start the web server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog-dir", os.Getenv("CATALOG_DIR"), "read product data from this directory instead of the built-in set")
}

func openCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Open(catalogDir)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func buildLogger(level string, development bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
