package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	syncTotal           *prometheus.CounterVec
	syncDuration        *prometheus.HistogramVec
	syncedCurrencies    *prometheus.GaugeVec
	tokenRefreshTotal   *prometheus.CounterVec
	connectionsTotal    *prometheus.CounterVec
	priceLookupTotal    *prometheus.CounterVec
	exportsTotal        *prometheus.CounterVec
	schedulerRuns       *prometheus.CounterVec
	circuitBreakerState *prometheus.GaugeVec
}

// NewPrometheusMetrics registers collectors with the given registerer, or
// the default registry when reg is nil.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		syncTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "balance_sync_total",
				Help: "Total number of balance synchronizations",
			},
			[]string{"provider", "status"},
		),
		syncDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "balance_sync_duration_milliseconds",
				Help:    "Balance synchronization duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
			[]string{"provider"},
		),
		syncedCurrencies: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "balance_sync_last_currencies",
				Help: "Number of currencies written by the most recent sync",
			},
			[]string{"provider"},
		),
		tokenRefreshTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oauth_token_refresh_total",
				Help: "Total number of OAuth token refresh attempts",
			},
			[]string{"provider", "outcome"},
		),
		connectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "provider_connections_total",
				Help: "Total number of provider connection changes",
			},
			[]string{"provider", "action"},
		),
		priceLookupTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "price_lookup_total",
				Help: "Total number of price oracle lookups",
			},
			[]string{"status"},
		),
		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_exports_total",
				Help: "Total number of spreadsheet exports",
			},
			[]string{"status"},
		),
		schedulerRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_scheduler_runs_total",
				Help: "Total number of scheduled sync passes",
			},
			[]string{"status"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	provider := tags["provider"]
	status := tags["status"]

	switch name {
	case "sync_total":
		m.syncTotal.WithLabelValues(provider, status).Inc()
	case "token_refresh_total":
		m.tokenRefreshTotal.WithLabelValues(provider, tags["outcome"]).Inc()
	case "connections_total":
		m.connectionsTotal.WithLabelValues(provider, tags["action"]).Inc()
	case "price_lookup_total":
		m.priceLookupTotal.WithLabelValues(status).Inc()
	case "exports_total":
		m.exportsTotal.WithLabelValues(status).Inc()
	case "scheduler_runs_total":
		m.schedulerRuns.WithLabelValues(status).Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	}
}

// RecordProcessingTime accepts "sync_duration.<provider>" names.
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	provider, ok := strings.CutPrefix(name, "sync_duration.")
	if ok && provider != "" {
		m.syncDuration.WithLabelValues(provider).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "synced_currencies":
		m.syncedCurrencies.WithLabelValues(tags["provider"]).Set(value)
	case "circuit_breaker_state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
