package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API
// and the availability engine.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	calendarBuilds  *prometheus.HistogramVec
	anomalyTotal    prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
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

	calendarBuilds := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "calendar_build_duration_seconds",
		Help:    "Time spent resolving availability and building day cells",
		Buckets: prometheus.DefBuckets,
	}, []string{"view"})

	anomalyTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "booking_slot_anomalies_total",
		Help: "Bookings whose time mapped to no catalog slot",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, calendarBuilds, anomalyTotal, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		calendarBuilds:  calendarBuilds,
		anomalyTotal:    anomalyTotal,
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

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveCalendarBuild records the time spent building one calendar.
func (m *MetricsService) ObserveCalendarBuild(view string, duration time.Duration) {
	if m == nil {
		return
	}
	m.calendarBuilds.WithLabelValues(view).Observe(duration.Seconds())
}

// AddBookingAnomalies counts bookings excluded from the index.
func (m *MetricsService) AddBookingAnomalies(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.anomalyTotal.Add(float64(count))
}
