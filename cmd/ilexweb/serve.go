package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ilexagri/website/internal/chart"
	"github.com/ilexagri/website/internal/common"
	"github.com/ilexagri/website/internal/config"
	"github.com/ilexagri/website/internal/contact"
	"github.com/ilexagri/website/internal/nav"
	"github.com/ilexagri/website/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if !cmd.Flags().Changed("catalog-dir") && cfg.CatalogDir != "" {
		catalogDir = cfg.CatalogDir
	}

	logger, err := buildLogger(cfg.LogLevel, cfg.Development())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat, err := openCatalog()
	if err != nil {
		return err
	}
	charts, err := chart.NewCache(cfg.ChartCacheSize)
	if err != nil {
		return fmt.Errorf("create chart cache: %w", err)
	}

	submitter := &contact.Submitter{
		Endpoint:   cfg.ContactEndpoint,
		HTTPClient: &http.Client{Timeout: cfg.ContactTimeout},
	}
	tabs := nav.NewMemoryStore(cat.Categories()[0].Slug)
	handlers := server.NewHandlers(cat, tabs, contact.NewService(submitter, logger.Named("contact")), charts, logger.Named("http"))
	srv := server.New(cfg.Addr(), server.NewRouter(handlers), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()
	go common.PingServerLoop(ctx, cfg.ServerURL, cfg.PingInterval, nil, logger.Named("keepalive"))

	logger.Info("catalog loaded",
		zap.Int("categories", len(cat.Categories())),
		zap.Int("products", len(cat.All())),
	)

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return <-errc
}
