// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics exposes Prometheus collectors for the API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the collectors the server records into.
type Metrics struct {
	Registry *prometheus.Registry

	GenerationsTotal  *prometheus.CounterVec
	GenerationSeconds prometheus.Histogram
	RequestsTotal     *prometheus.CounterVec
}

// New builds a Metrics with its own registry, keeping tests isolated from
// the default global registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		GenerationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "content_generations_total",
			Help: "Completed generations by outcome.",
		}, []string{"outcome"}),
		GenerationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "content_generation_duration_seconds",
			Help:    "Wall time of a single generation.",
			Buckets: prometheus.DefBuckets,
		}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by path and status.",
		}, []string{"path", "status"}),
	}
}
