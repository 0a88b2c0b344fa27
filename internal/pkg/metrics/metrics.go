package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics содержит Prometheus-счётчики и гистограммы сервиса
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec   // labels: method, route, status
	HTTPDuration    *prometheus.HistogramVec // labels: method, route
	SliceLoads      prometheus.Counter
	SliceLoadErrors prometheus.Counter
	CacheLookups    *prometheus.CounterVec // labels: kind={slice,stats}, result={hit,miss}
	MapboxRequests  *prometheus.CounterVec // labels: outcome={success,error}
}

// New создаёт метрики и регистрирует их в default registry
func New() *Metrics {
	m := build()

	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.SliceLoads,
		m.SliceLoadErrors,
		m.CacheLookups,
		m.MapboxRequests,
	)

	return m
}

// NewForTesting создаёт метрики без регистрации, чтобы избежать
// паники "already registered" в параллельных тестах
func NewForTesting() *Metrics {
	return build()
}

func build() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drought_monitor",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "drought_monitor",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		SliceLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "drought_monitor",
			Name:      "slice_loads_total",
			Help:      "Total time slices read from the SPEI dataset.",
		}),
		SliceLoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "drought_monitor",
			Name:      "slice_load_errors_total",
			Help:      "Total failed dataset slice reads.",
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drought_monitor",
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by payload kind and result.",
		}, []string{"kind", "result"}),
		MapboxRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drought_monitor",
			Name:      "mapbox_requests_total",
			Help:      "Mapbox API requests by outcome.",
		}, []string{"outcome"}),
	}
}
