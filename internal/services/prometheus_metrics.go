package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsCreated *prometheus.CounterVec
	transactionsDeleted prometheus.Counter
	listRequests        *prometheus.CounterVec
	dashboardViews      *prometheus.CounterVec
	dashboardDuration   prometheus.Histogram
	listDuration        prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_created_total",
				Help: "Total number of transactions created, by type",
			},
			[]string{"type"},
		),
		transactionsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_deleted_total",
				Help: "Total number of transactions deleted",
			},
		),
		listRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_list_requests_total",
				Help: "Total number of transaction list requests, by status",
			},
			[]string{"status"},
		),
		dashboardViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_dashboard_views_total",
				Help: "Total number of dashboard view derivations, by status",
			},
			[]string{"status"},
		),
		dashboardDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_dashboard_derive_duration_milliseconds",
				Help:    "Dashboard view derivation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		listDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_list_duration_milliseconds",
				Help:    "Transaction list query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "transaction.created":
		if txType := tags["type"]; txType != "" {
			m.transactionsCreated.WithLabelValues(txType).Inc()
		}
	case "transaction.deleted":
		m.transactionsDeleted.Inc()
	case "transaction.list":
		if status != "" {
			m.listRequests.WithLabelValues(status).Inc()
		}
	case "dashboard.view":
		if status != "" {
			m.dashboardViews.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard.derive":
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	case "transaction.list":
		m.listDuration.Observe(float64(duration.Milliseconds()))
	}
}
