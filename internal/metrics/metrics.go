package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis modes.
const (
	ModeLocal    = "local"
	ModeAI       = "ai"
	ModeFallback = "fallback"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aidoc_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aidoc_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aidoc_symptom_analyses_total",
			Help: "Total number of symptom analyses by result mode",
		},
		[]string{"mode"},
	)

	EnhancementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aidoc_enhancement_duration_seconds",
			Help:    "Duration of external enhancement calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 15, 30},
		},
	)

	EnhancementCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aidoc_enhancement_cache_total",
			Help: "Enhancement cache lookups by result",
		},
		[]string{"result"},
	)

	ChatRepliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aidoc_chat_replies_total",
			Help: "Total number of chat replies by provider and status",
		},
		[]string{"provider", "status"},
	)
)
