package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/terra-clan/paradigm-advisor/internal/models"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Page metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_recommendations_total",
			Help: "Total number of recommendations shown, by paradigm",
		},
		[]string{"paradigm"},
	)

	PageActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_page_actions_total",
			Help: "Total number of page interactions, by action and transport",
		},
		[]string{"action", "transport"}, // transport: "form", "websocket"
	)

	LiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "advisor_live_connections",
			Help: "Current number of open live-update websocket connections",
		},
	)

	SessionsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_sessions_expired_total",
			Help: "Total number of expired page sessions removed by the sweeper",
		},
	)
)

// RecordHTTPRequest records one completed HTTP request
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRecommendation counts a recommendation shown to a user
func RecordRecommendation(p models.Paradigm) {
	RecommendationsTotal.WithLabelValues(string(p)).Inc()
}

// RecordAction counts a page interaction
func RecordAction(action, transport string) {
	PageActionsTotal.WithLabelValues(action, transport).Inc()
}
