// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model and stage configuration for
// the content generation pipeline.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgents is the pool of User-Agent strings rotated across requests
	// to reduce upstream blocking. An empty pool falls back to a default.
	UserAgents []string `json:"user_agents" yaml:"user_agents" mapstructure:"user_agents"`
}

// ResearchConfig holds settings for the research fetch stage.
type ResearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxRetries is the number of attempts per fetch tier (default 2).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// RetryDelay is the fixed delay between attempts (default 500ms).
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay" mapstructure:"retry_delay"`

	// ExtractLimit is the character budget for a research snippet (default 800).
	ExtractLimit int `json:"extract_limit" yaml:"extract_limit" mapstructure:"extract_limit"`

	// MaxSnippets is how many search-result snippets the secondary tier
	// concatenates (default 3).
	MaxSnippets int `json:"max_snippets" yaml:"max_snippets" mapstructure:"max_snippets"`
}

// GeneratorConfig holds settings for the generation pipeline.
type GeneratorConfig struct {
	// DefaultLength is the target word count when the request omits or
	// mangles the length field (default 500).
	DefaultLength int `json:"default_length" yaml:"default_length" mapstructure:"default_length"`

	// MinLength and MaxLength bound the requested word count (100, 2000).
	MinLength int `json:"min_length" yaml:"min_length" mapstructure:"min_length"`
	MaxLength int `json:"max_length" yaml:"max_length" mapstructure:"max_length"`

	// CatalogFile optionally overrides the built-in template catalogs.
	CatalogFile string `json:"catalog_file,omitempty" yaml:"catalog_file,omitempty" mapstructure:"catalog_file"`
}

// HistoryConfig holds settings for the generation history store.
type HistoryConfig struct {
	// DataDir is the directory holding the SQLite database (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	// MaxResults is the default page size for history listings (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// ServerConfig holds settings for the HTTP API server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// AllowedOrigins lists CORS origins; "*" allows any caller.
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// Config groups all stage configurations.
type Config struct {
	Research  ResearchConfig  `json:"research" yaml:"research" mapstructure:"research"`
	Generator GeneratorConfig `json:"generator" yaml:"generator" mapstructure:"generator"`
	History   HistoryConfig   `json:"history" yaml:"history" mapstructure:"history"`
	Server    ServerConfig    `json:"server" yaml:"server" mapstructure:"server"`
}

// DefaultConfig returns the configuration used when no file or flags
// override it.
func DefaultConfig() Config {
	return Config{
		Research: ResearchConfig{
			HTTPConfig: HTTPConfig{
				Timeout: 10 * time.Second,
			},
			MaxRetries:   2,
			RetryDelay:   500 * time.Millisecond,
			ExtractLimit: 800,
			MaxSnippets:  3,
		},
		Generator: GeneratorConfig{
			DefaultLength: 500,
			MinLength:     100,
			MaxLength:     2000,
		},
		History: HistoryConfig{
			DataDir:    "data",
			MaxResults: 20,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
	}
}
