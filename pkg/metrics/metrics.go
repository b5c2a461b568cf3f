// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeGenerated = "generated"
	OutcomeFallback  = "fallback"
	OutcomeFailed    = "failed"
)

var (
	PlanGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "travelplanner",
		Name:      "plan_generations_total",
		Help:      "Plan generation requests by outcome.",
	}, []string{"outcome"})

	StorageFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "travelplanner",
		Name:      "storage_fallbacks_total",
		Help:      "Durable store operations that degraded to the in-memory list.",
	}, []string{"entity", "op"})

	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "travelplanner",
		Name:      "llm_request_duration_seconds",
		Help:      "Latency of chat-completion calls.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
	}, []string{"provider"})
)
