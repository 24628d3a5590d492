// Package metrics holds the Prometheus collectors of the backend.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dompetku/backend/internal/allocation"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dompetku"

// Mode of an allocation run.
type Mode string

const (
	ModePreview Mode = "preview"
	ModeApply   Mode = "apply"
)

// Metrics bundles all collectors with their own registry so that
// several instances can exist in one process, e.g. in tests.
type Metrics struct {
	registry        *prometheus.Registry
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	allocationRuns  *prometheus.CounterVec
	rulesSkipped    *prometheus.CounterVec
	allocatedAmount prometheus.Counter
}

// New creates and registers all collectors.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "How many HTTP requests processed, partitioned by status code and HTTP method.",
			},
			[]string{"code", "method", "url"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "The HTTP request latencies in seconds.",
			},
			[]string{"code", "method", "url"},
		),
		allocationRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "allocation_runs_total",
				Help:      "How many times the allocation calculator ran, partitioned by preview and apply.",
			},
			[]string{"mode"},
		),
		rulesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "allocation_rules_skipped_total",
				Help:      "How many active allocation rules were skipped, partitioned by reason.",
			},
			[]string{"reason"},
		),
		allocatedAmount: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "allocated_amount_total",
				Help:      "Sum of all amounts moved to pockets by applied allocations.",
			},
		),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestCount,
		m.requestDuration,
		m.allocationRuns,
		m.rulesSkipped,
		m.allocatedAmount,
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("could not register %T with Prometheus: %w", c, err)
		}
	}

	return m, nil
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware updates the HTTP request metrics.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		m.requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		m.requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}

// ObserveAllocation records a run of the allocation calculator.
//
// The allocated amount is only counted for applied runs.
func (m *Metrics) ObserveAllocation(mode Mode, r allocation.Result) {
	m.allocationRuns.WithLabelValues(string(mode)).Inc()

	for _, s := range r.Skipped {
		m.rulesSkipped.WithLabelValues(string(s.Reason)).Inc()
	}

	if mode == ModeApply {
		m.allocatedAmount.Add(r.Allocated().InexactFloat64())
	}
}
