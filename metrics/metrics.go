package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests tracks handled requests per route and status code
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nftmarket_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "code"},
	)

	// HTTPLatency tracks request latency per route
	HTTPLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nftmarket_http_latency_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// JobRuns tracks background job ticks per job and result
	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nftmarket_job_runs_total",
			Help: "Total number of background job runs",
		},
		[]string{"job", "result"},
	)

	// JobAffected tracks records changed by background jobs
	JobAffected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nftmarket_job_affected_total",
			Help: "Total number of records changed by background jobs",
		},
		[]string{"job"},
	)

	// Settlements tracks completed sales per kind (buy or bid)
	Settlements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nftmarket_settlements_total",
			Help: "Total number of settled sales",
		},
		[]string{"kind"},
	)

	// Trades tracks completed and cancelled trades
	Trades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nftmarket_trades_total",
			Help: "Total number of finished trades",
		},
		[]string{"status"},
	)
)
