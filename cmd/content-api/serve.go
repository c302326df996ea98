// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Jack999Lab/content-api/internal/history"
	"github.com/Jack999Lab/content-api/internal/metrics"
	"github.com/Jack999Lab/content-api/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve exposes generation, batch generation, and content analysis over
HTTP, with Prometheus metrics on /metrics. Completed generations are
recorded in the history store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err == nil {
			fmt.Fprintln(os.Stderr, "Loaded environment from .env")
		}

		cfg := loadConfig()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		pipe, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		// The server still runs without history; generations just are not
		// recorded.
		store, err := history.NewStore(cfg.History)
		if err != nil {
			logger.Warn("history store unavailable", "error", err)
			store = nil
		} else {
			defer store.Close()
		}

		srv := server.New(pipe, store, metrics.New(), cfg.Server, version, logger)
		logger.Info("starting server", "addr", cfg.Server.Addr)
		return srv.Router().Run(cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config, \":8080\")")

	rootCmd.AddCommand(serveCmd)
}
