package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsRecorded     *prometheus.CounterVec
	forecastsGenerated       *prometheus.CounterVec
	forecastDuration         prometheus.Histogram
	forecastConfidence       prometheus.Histogram
	recommendationsGenerated *prometheus.CounterVec
	budgetsUpserted          prometheus.Counter
	sampleDataGenerated      prometheus.Counter
	monthsOfHistory          prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		forecastsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forecasts_generated_total",
				Help: "Total number of spending forecasts generated",
			},
			[]string{"strategy"},
		),
		forecastDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "forecast_duration_milliseconds",
				Help:    "Forecast computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		forecastConfidence: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "forecast_confidence",
				Help:    "Confidence score distribution of generated forecasts",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		recommendationsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendations_generated_total",
				Help: "Total number of recommendation runs",
			},
			[]string{"mode"},
		),
		budgetsUpserted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "budgets_upserted_total",
				Help: "Total number of budget create or update operations",
			},
		),
		sampleDataGenerated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sample_transactions_generated_total",
				Help: "Total number of sample transactions generated",
			},
		),
		monthsOfHistory: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "months_of_history",
				Help: "Number of distinct months covered by stored transactions",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transactions_recorded":
		if txnType := tags["type"]; txnType != "" {
			m.transactionsRecorded.WithLabelValues(txnType).Inc()
		}
	case "forecasts_generated":
		if strategy := tags["strategy"]; strategy != "" {
			m.forecastsGenerated.WithLabelValues(strategy).Inc()
		}
	case "recommendations_generated":
		if mode := tags["mode"]; mode != "" {
			m.recommendationsGenerated.WithLabelValues(mode).Inc()
		}
	case "budgets_upserted":
		m.budgetsUpserted.Inc()
	case "sample_data_generated":
		m.sampleDataGenerated.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "forecast_duration":
		m.forecastDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "forecast_confidence":
		m.forecastConfidence.Observe(value)
	case "months_of_history":
		m.monthsOfHistory.Set(value)
	}
}
