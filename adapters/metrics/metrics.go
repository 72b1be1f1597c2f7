// Package metrics provides Prometheus metrics collection for storeadmin.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/artpar/storeadmin/ports"
)

const namespace = "storeadmin"

// Collector holds all Prometheus metrics for storeadmin.
type Collector struct {
	// HTTP metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Catalog metrics
	Mutations          *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	StalePlanRefs      prometheus.Counter

	// Storage metrics
	StoreWrites *prometheus.CounterVec

	// Admin metrics
	Logins *prometheus.CounterVec

	// Config metrics
	ConfigReloads      prometheus.Counter
	ConfigReloadErrors prometheus.Counter
	ConfigLastReload   prometheus.Gauge
}

// New creates a collector registered with the default registry.
func New() *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a collector registered with reg.
// Useful for testing to avoid global state.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being served",
			},
		),
		Mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_mutations_total",
				Help:      "Successful catalog writes by collection and operation",
			},
			[]string{"collection", "op"},
		),
		ValidationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_failures_total",
				Help:      "Rejected fields by collection and field",
			},
			[]string{"collection", "field"},
		),
		StalePlanRefs: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stale_plan_references_total",
				Help:      "Product plan IDs that did not resolve to a plan",
			},
		),
		StoreWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_writes_total",
				Help:      "Full-collection writes by collection and result",
			},
			[]string{"collection", "result"},
		),
		Logins: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "admin_logins_total",
				Help:      "Admin login attempts by result",
			},
			[]string{"result"},
		),
		ConfigReloads: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_reloads_total",
				Help:      "Total number of successful config reloads",
			},
		),
		ConfigReloadErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_reload_errors_total",
				Help:      "Total number of config reload errors",
			},
		),
		ConfigLastReload: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "config_last_reload_timestamp",
				Help:      "Unix timestamp of last successful config reload",
			},
		),
	}
}

// Mutation counts a successful catalog write.
func (c *Collector) Mutation(collection, op string) {
	c.Mutations.WithLabelValues(collection, op).Inc()
}

// ValidationFailure counts a rejected field.
func (c *Collector) ValidationFailure(collection, field string) {
	c.ValidationFailures.WithLabelValues(collection, field).Inc()
}

// StalePlanReference counts an unresolved plan ID.
func (c *Collector) StalePlanReference() {
	c.StalePlanRefs.Inc()
}

// Login counts a login attempt.
func (c *Collector) Login(result string) {
	c.Logins.WithLabelValues(result).Inc()
}

// StoreWrite counts a collection save.
func (c *Collector) StoreWrite(collection string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.StoreWrites.WithLabelValues(collection, result).Inc()
}

// ConfigReload records a config reload attempt.
func (c *Collector) ConfigReload(err error) {
	if err != nil {
		c.ConfigReloadErrors.Inc()
		return
	}
	c.ConfigReloads.Inc()
	c.ConfigLastReload.Set(float64(time.Now().Unix()))
}

// StatusClass buckets an HTTP status into "2xx", "4xx" and so on.
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return strconv.Itoa(status)
	}
	return strconv.Itoa(status/100) + "xx"
}

var _ ports.CatalogMetrics = (*Collector)(nil)
