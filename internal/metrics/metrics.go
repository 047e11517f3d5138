// Package metrics collects and exposes the Prometheus metrics of the
// employee keeper server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "employee_keeper"

// MetricsCollector is the recording side used by middleware, handlers and
// the startup bootstrap.
type MetricsCollector interface {
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
	RecordLogin(success bool)
	ObserveBootstrapStep(step string, ok bool)
}

// Collector is the Prometheus implementation of [MetricsCollector].
type Collector struct {
	httpRequests   *prometheus.CounterVec
	httpLatency    *prometheus.HistogramVec
	loginAttempts  *prometheus.CounterVec
	bootstrapSteps *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics in reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		bootstrapSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bootstrap_steps_total",
			Help:      "Startup schema and index steps by step and result.",
		}, []string{"step", "result"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.loginAttempts,
		c.bootstrapSteps,
	)

	return c
}

// RecordHTTPRequest counts one served request and observes its latency.
// route should be the matched pattern, not the raw path, to bound label
// cardinality.
func (c *Collector) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordLogin counts a login attempt.
func (c *Collector) RecordLogin(success bool) {
	c.loginAttempts.WithLabelValues(result(success)).Inc()
}

// ObserveBootstrapStep counts the outcome of one bootstrap step.
func (c *Collector) ObserveBootstrapStep(step string, ok bool) {
	c.bootstrapSteps.WithLabelValues(step, result(ok)).Inc()
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

// Handler returns the HTTP handler serving gatherer for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
