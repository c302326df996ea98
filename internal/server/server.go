// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the generation pipeline over HTTP. The handlers
// are thin collaborators: they construct a GenerationRequest, invoke the
// pipeline, and serialize the result — all hard logic lives in the stages.
package server

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jack999Lab/content-api/internal/history"
	"github.com/Jack999Lab/content-api/internal/metrics"
	"github.com/Jack999Lab/content-api/internal/pipeline"
	"github.com/Jack999Lab/content-api/pkg/types"
)

// Server holds the handler dependencies.
type Server struct {
	pipe    *pipeline.Pipeline
	store   *history.Store
	metrics *metrics.Metrics
	cfg     types.ServerConfig
	version string
	logger  *slog.Logger
}

// New builds a Server. store may be nil to disable history recording.
func New(pipe *pipeline.Pipeline, store *history.Store, m *metrics.Metrics, cfg types.ServerConfig, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.New()
	}
	return &Server{
		pipe:    pipe,
		store:   store,
		metrics: m,
		cfg:     cfg,
		version: version,
		logger:  logger,
	}
}

// Router assembles the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(s.requestTracking())
	router.Use(s.cors())

	router.GET("/", s.handleHome)
	router.GET("/health", s.handleHealth)
	router.GET("/generate", s.handleGenerate)
	router.POST("/generate", s.handleGenerate)
	router.POST("/batch", s.handleBatch)
	router.POST("/analyze", s.handleAnalyze)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		s.metrics.Registry, promhttp.HandlerOpts{})))

	return router
}

// logWriter adapts the pipeline's progress writer to structured logging.
type logWriter struct {
	logger *slog.Logger
}

func (w logWriter) Write(p []byte) (int, error) {
	if msg := strings.TrimSpace(string(p)); msg != "" {
		w.logger.Warn(msg)
	}
	return len(p), nil
}
