package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "metar_etl"

// Metrics holds the Prometheus counters, histograms, and gauges for the ETL pipeline.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Decoder metrics.
	ReportsDecoded     *prometheus.CounterVec // labels: type={METAR,SPECI,UNKNOWN}
	GroupsUnrecognized prometheus.Counter

	// NOAA station lookups.
	NOAAFetches       *prometheus.CounterVec // labels: outcome={success,not_found,error}
	NOAACache         *prometheus.CounterVec // labels: result={hit,miss}
	NOAAFetchDuration prometheus.Histogram

	LiveSubscribers prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Total messages read from the source topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_produced_total",
			Help:      "Total messages written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      "Total transformation failures.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ReportsDecoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_decoded_total",
			Help:      "Reports decoded by message type.",
		}, []string{"type"}),
		GroupsUnrecognized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "groups_unrecognized_total",
			Help:      "Report groups that matched no decoding rule.",
		}),
		NOAAFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "noaa_fetches_total",
			Help:      "NOAA station report requests by outcome.",
		}, []string{"outcome"}),
		NOAACache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "noaa_cache_total",
			Help:      "NOAA report cache lookups by result.",
		}, []string{"result"}),
		NOAAFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "noaa_fetch_duration_seconds",
			Help:      "NOAA request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		LiveSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_subscribers",
			Help:      "Connected websocket feed subscribers.",
		}),
	}

	prometheus.MustRegister(
		m.MessagesConsumed,
		m.MessagesProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.ReportsDecoded,
		m.GroupsUnrecognized,
		m.NOAAFetches,
		m.NOAACache,
		m.NOAAFetchDuration,
		m.LiveSubscribers,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		MessagesConsumed:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "messages_consumed_total"}),
		MessagesProduced:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "messages_produced_total"}),
		TransformErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "transform_errors_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "pipeline_running"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "batch_processing_duration_seconds"}),
		ReportsDecoded:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "reports_decoded_total"}, []string{"type"}),
		GroupsUnrecognized:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "groups_unrecognized_total"}),
		NOAAFetches:             prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "noaa_fetches_total"}, []string{"outcome"}),
		NOAACache:               prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "noaa_cache_total"}, []string{"result"}),
		NOAAFetchDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "noaa_fetch_duration_seconds"}),
		LiveSubscribers:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "live_subscribers"}),
	}
}
