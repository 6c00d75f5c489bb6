// Package metrics exposes render and request counters for Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	MetricRendersTotal           = "name2ecert_renders_total"
	MetricRenderDurationSeconds  = "name2ecert_render_duration_seconds"
	MetricBatchesTotal           = "name2ecert_batches_total"
	MetricBatchRecipients        = "name2ecert_batch_recipients"
	MetricRequestsTotal          = "name2ecert_http_requests_total"
	MetricRequestDurationSeconds = "name2ecert_http_request_duration_seconds"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	rendersTotal           *prometheus.CounterVec
	renderDurationSeconds  prometheus.Histogram
	batchesTotal           *prometheus.CounterVec
	batchRecipients        prometheus.Histogram
	requestsTotal          *prometheus.CounterVec
	requestDurationSeconds *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricRendersTotal,
			Help: "Certificates rendered, by outcome.",
		}, []string{"outcome"}),
		renderDurationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricRenderDurationSeconds,
			Help:    "Time spent rendering a single certificate.",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
		batchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricBatchesTotal,
			Help: "Preview and batch runs, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		batchRecipients: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricBatchRecipients,
			Help:    "Recipients per batch.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 7),
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricRequestsTotal,
			Help: "HTTP requests, by route and status code.",
		}, []string{"method", "route", "code"}),
		requestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricRequestDurationSeconds,
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		m.rendersTotal,
		m.renderDurationSeconds,
		m.batchesTotal,
		m.batchRecipients,
		m.requestsTotal,
		m.requestDurationSeconds,
		collectors.NewGoCollector(),
	)

	return m
}

func outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

// ObserveRender matches the signature of the engine's render hook.
func (m *Metrics) ObserveRender(d time.Duration, err error) {
	m.rendersTotal.WithLabelValues(outcome(err)).Inc()
	m.renderDurationSeconds.Observe(d.Seconds())
}

func (m *Metrics) ObserveBatch(mode string, recipients int, err error) {
	m.batchesTotal.WithLabelValues(mode, outcome(err)).Inc()
	if recipients > 0 {
		m.batchRecipients.Observe(float64(recipients))
	}
}

// Middleware records every request under its route pattern.
func (m *Metrics) Middleware(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()

	route := ctx.FullPath()
	if route == "" {
		route = "unmatched"
	}

	m.requestsTotal.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
	m.requestDurationSeconds.WithLabelValues(ctx.Request.Method, route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
