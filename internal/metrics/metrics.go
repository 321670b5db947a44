package metrics

import (
	"net/http"
	"strconv"
	"time"

	"eurobot-backend/internal/ingest"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eurobot"

// Recorder owns the service's Prometheus registry and instruments
type Recorder struct {
	registry *prometheus.Registry

	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec

	ingestRuns     *prometheus.CounterVec
	ingestSkipped  *prometheus.CounterVec
	ingestWarnings *prometheus.CounterVec
	ingestRecords  *prometheus.GaugeVec
	ingestLatency  prometheus.Histogram
	ingestLastRun  prometheus.Gauge
}

// NewRecorder creates a recorder backed by a private registry with Go and process collectors
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ingestRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_runs_total",
			Help:      "Ingestion runs by result.",
		}, []string{"result"}),
		ingestSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_skipped_rows_total",
			Help:      "CSV rows rejected during ingestion by reason.",
		}, []string{"reason"}),
		ingestWarnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_warnings_total",
			Help:      "Data anomalies kept during ingestion by kind.",
		}, []string{"kind"}),
		ingestRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ingest_records",
			Help:      "Records written by the last successful ingestion.",
		}, []string{"collection"}),
		ingestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingest_duration_seconds",
			Help:      "Ingestion run duration.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		ingestLastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ingest_last_success_timestamp_seconds",
			Help:      "Unix time of the last successful ingestion.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requests,
		r.requestLatency,
		r.ingestRuns,
		r.ingestSkipped,
		r.ingestWarnings,
		r.ingestRecords,
		r.ingestLatency,
		r.ingestLastRun,
	)
	return r
}

// Handler exposes the registry in the Prometheus text format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveRequest records one served HTTP request
func (r *Recorder) ObserveRequest(method, route string, status int, latency time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.requestLatency.WithLabelValues(method, route).Observe(latency.Seconds())
}

// ObserveIngestion implements ingest.Recorder
func (r *Recorder) ObserveIngestion(report *ingest.Report, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	r.ingestRuns.WithLabelValues(result).Inc()
	if report == nil {
		return
	}

	r.ingestLatency.Observe(report.Duration.Seconds())
	for _, s := range report.Skipped {
		r.ingestSkipped.WithLabelValues(string(s.Reason)).Inc()
	}
	for _, w := range report.Warnings {
		r.ingestWarnings.WithLabelValues(string(w.Kind)).Inc()
	}

	if err != nil {
		return
	}
	r.ingestRecords.WithLabelValues("teams").Set(float64(report.Teams))
	r.ingestRecords.WithLabelValues("matches").Set(float64(report.Matches))
	r.ingestRecords.WithLabelValues("rankings").Set(float64(report.Rankings))
	r.ingestRecords.WithLabelValues("series").Set(float64(report.SeriesWritten))
	r.ingestLastRun.Set(float64(report.StartedAt.Add(report.Duration).Unix()))
}

var _ ingest.Recorder = (*Recorder)(nil)
