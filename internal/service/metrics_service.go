package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	mailSent        prometheus.Counter
	mailFailed      prometheus.Counter
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

	mailSent := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notification_emails_sent_total",
		Help: "Total low-attendance emails delivered",
	})

	mailFailed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notification_emails_failed_total",
		Help: "Total low-attendance emails that failed to deliver",
	})

	registry.MustRegister(requestDuration, requestTotal, mailSent, mailFailed)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		mailSent:        mailSent,
		mailFailed:      mailFailed,
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

// IncMailSent counts one delivered notification email.
func (m *MetricsService) IncMailSent() {
	if m == nil {
		return
	}
	m.mailSent.Inc()
}

// IncMailFailed counts one failed notification email.
func (m *MetricsService) IncMailFailed() {
	if m == nil {
		return
	}
	m.mailFailed.Inc()
}
