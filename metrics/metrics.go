// Package metrics declares the Prometheus collectors of the storefront.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// CacheLookups counts payload cache reads by outcome: hit, stale or miss.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cache_lookups_total",
			Help: "Payload cache lookups by key and outcome",
		},
		[]string{"key", "result"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_upstream_requests_total",
			Help: "Requests sent to the backend REST API by route and outcome",
		},
		[]string{"method", "route", "outcome"},
	)

	CarouselViewers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "storefront_carousel_viewers",
			Help: "Live carousel sessions per carousel",
		},
		[]string{"carousel"},
	)
)
