package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all application metrics
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration    *prometheus.HistogramVec
	RequestTotal       *prometheus.CounterVec
	AvailabilityChecks *prometheus.CounterVec
	Bookings           *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
			},
			[]string{"method", "path", "status"},
		),
		RequestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		AvailabilityChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "availability_checks_total",
				Help: "Total number of availability checks by outcome",
			},
			[]string{"outcome"},
		),
		Bookings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookings_total",
				Help: "Total number of booking attempts by outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(
		m.RequestDuration,
		m.RequestTotal,
		m.AvailabilityChecks,
		m.Bookings,
	)

	return m
}

// Handler exposes the registry as a gin handler for the /metrics route.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
