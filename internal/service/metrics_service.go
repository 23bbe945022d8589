package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation on a private
// registry. All methods tolerate a nil receiver so instrumentation can be
// omitted in tests.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	logins          prometheus.Counter
	importEntries   *prometheus.CounterVec
	boardBuilds     prometheus.Histogram
	partnerBuilds   prometheus.Histogram
}

// NewMetricsService registers the service's Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	logins := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "logins_total",
		Help: "Total number of successful logins",
	})

	importEntries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calendar_import_entries_total",
		Help: "Schedule entries produced by calendar imports, by outcome",
	}, []string{"outcome"})

	boardBuilds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "status_board_build_duration_seconds",
		Help:    "Time spent assembling the status board",
		Buckets: prometheus.DefBuckets,
	})

	partnerBuilds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommendation_build_duration_seconds",
		Help:    "Time spent ranking study partners",
		Buckets: prometheus.DefBuckets,
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, logins, importEntries, boardBuilds, partnerBuilds, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		logins:          logins,
		importEntries:   importEntries,
		boardBuilds:     boardBuilds,
		partnerBuilds:   partnerBuilds,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records one handled request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordLogin counts a successful login.
func (m *MetricsService) RecordLogin() {
	if m == nil {
		return
	}
	m.logins.Inc()
}

// RecordImport counts entries produced and skipped by one calendar upload.
func (m *MetricsService) RecordImport(imported, skipped int) {
	if m == nil {
		return
	}
	m.importEntries.WithLabelValues("imported").Add(float64(imported))
	m.importEntries.WithLabelValues("skipped").Add(float64(skipped))
}

// ObserveBoardBuild tracks one status board assembly.
func (m *MetricsService) ObserveBoardBuild(duration time.Duration) {
	if m == nil {
		return
	}
	m.boardBuilds.Observe(duration.Seconds())
}

// ObserveRecommendationBuild tracks one partner ranking pass.
func (m *MetricsService) ObserveRecommendationBuild(duration time.Duration) {
	if m == nil {
		return
	}
	m.partnerBuilds.Observe(duration.Seconds())
}
