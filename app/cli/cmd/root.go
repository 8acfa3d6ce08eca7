package cmd

import (
	"context"
	"fmt"
	"os"

	"shopperSpectrum/business/artifact"
	"shopperSpectrum/internal/loader"
	"shopperSpectrum/pkg/config"
	"shopperSpectrum/pkg/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "shopper",
	Short:        "Query product similarity and customer segments offline",
	SilenceUsage: true,
	Long: `shopper loads the same artifacts as the HTTP server (similarity table,
scaler and cluster model) and answers one query per invocation.`,
}

// loadStore is replaced in tests.
var loadStore = func(ctx context.Context) (*artifact.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load config: %w", err)
	}

	logger.Init(cfg.App.Environment, logger.WithLevel(cfg.Log.Level), logger.WithFormat(cfg.Log.Format))

	store, err := loader.LoadStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
