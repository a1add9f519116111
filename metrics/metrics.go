// Package metrics holds the Prometheus collectors shared by the service.
// Collectors register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Article load outcomes
const (
	LoadOK          = "ok"
	LoadFetchFailed = "fetch_failed"
	LoadParseFailed = "parse_failed"
)

// Lead submission outcomes
const (
	LeadAccepted = "accepted"
	LeadRejected = "rejected"
	LeadFailed   = "failed"
	LeadInvalid  = "invalid"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invis_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "invis_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ArticleLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invis_article_loads_total",
			Help: "Article collection loads by outcome.",
		},
		[]string{"outcome"},
	)

	ArticlesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "invis_articles_loaded",
			Help: "Number of articles produced by the most recent load.",
		},
	)

	LeadSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invis_lead_submissions_total",
			Help: "Lead submissions by outcome.",
		},
		[]string{"outcome"},
	)
)
