// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the content-api CLI.
// Each operation is a subcommand: generate, batch, analyze, serve, and
// history. The HTTP server exposed by serve offers the same operations to
// remote callers.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Jack999Lab/content-api/internal/catalog"
	"github.com/Jack999Lab/content-api/internal/pipeline"
	"github.com/Jack999Lab/content-api/internal/research"
	"github.com/Jack999Lab/content-api/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the content-api CLI.
var rootCmd = &cobra.Command{
	Use:   "content-api",
	Short: "Heuristic content generation with SEO and uniqueness scoring",
	Long: `content-api turns a topic plus optional keywords, tone, and target length
into a synthetic prose document with two heuristic quality scores. Research
text is fetched from public sources with graceful degradation, structured
through fixed template catalogs, normalized to length, and styled by tone.

Run "content-api serve" to expose the same operations over HTTP.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./content-api.yaml or ~/.config/content-api/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("content-api")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "content-api"))
		}
	}

	viper.SetEnvPrefix("CONTENT_API")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig overlays the config file and environment on the defaults.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring malformed config: %v\n", err)
		return types.DefaultConfig()
	}
	return cfg
}

// loadCatalog returns the configured catalog override or the built-in one.
func loadCatalog(cfg types.Config) (*catalog.Catalog, error) {
	if cfg.Generator.CatalogFile != "" {
		return catalog.Load(cfg.Generator.CatalogFile)
	}
	return catalog.Default(), nil
}

// buildPipeline assembles the generation pipeline from configuration.
func buildPipeline(cfg types.Config) (*pipeline.Pipeline, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	fetcher := research.New(nil, cfg.Research, cat)
	return pipeline.New(fetcher, cat, cfg.Generator), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
