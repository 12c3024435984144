package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DashboardRequestsTotal counts requests served by the dashboard API
	// Cardinality: ~40 (routes × status codes)
	DashboardRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "api_requests_total",
			Help: "Requests served by the dashboard API by route and status code",
		},
		[]string{"route", "code"},
	)

	// DashboardRequestDuration tracks handler duration by route
	DashboardRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "api_request_duration_seconds",
			Help: "Time taken to serve dashboard API requests",
		},
		[]string{"route"},
	)

	// LiveConnectionsGauge tracks open live OHLC websocket connections
	LiveConnectionsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "live_connections",
			Help: "Number of open live OHLC websocket connections",
		},
	)
)

// RecordDashboardRequest records a served API request
func RecordDashboardRequest(route string, code int, start time.Time) {
	DashboardRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	DashboardRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}
