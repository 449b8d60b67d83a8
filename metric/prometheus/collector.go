// Package prometheus exports pointgo operation metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc := pointprom.NewCollector(reg)
//	cloud, _ := pointgo.New(ps, pointgo.WithMetricsCollector(mc))
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/pointgo"
)

const namespace = "pointgo"

// Collector implements pointgo.MetricsCollector with Prometheus metrics.
type Collector struct {
	opLatency *prometheus.HistogramVec
	ops       *prometheus.CounterVec
	results   *prometheus.HistogramVec
	centroids prometheus.Counter
}

var _ pointgo.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of pointgo operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of pointgo operations by outcome.",
		}, []string{"op", "status"}),
		results: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_results",
			Help:      "Number of neighbors returned per query.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"kind"}),
		centroids: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "group_centroids_total",
			Help:      "Number of centroids grouped.",
		}),
	}

	reg.MustRegister(c.opLatency, c.ops, c.results, c.centroids)
	return c
}

func (c *Collector) observe(op string, d time.Duration, err error) {
	c.opLatency.WithLabelValues(op).Observe(d.Seconds())
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.ops.WithLabelValues(op, status).Inc()
}

// RecordBuild implements pointgo.MetricsCollector.
func (c *Collector) RecordBuild(n int, d time.Duration, err error) {
	c.observe("build", d, err)
}

// RecordSample implements pointgo.MetricsCollector.
func (c *Collector) RecordSample(method string, m int, d time.Duration, err error) {
	c.observe("sample_"+method, d, err)
}

// RecordQuery implements pointgo.MetricsCollector.
func (c *Collector) RecordQuery(kind string, results int, d time.Duration, err error) {
	c.observe("query_"+kind, d, err)
	if err == nil {
		c.results.WithLabelValues(kind).Observe(float64(results))
	}
}

// RecordGroup implements pointgo.MetricsCollector.
func (c *Collector) RecordGroup(centroids int, d time.Duration, err error) {
	c.observe("group", d, err)
	if err == nil {
		c.centroids.Add(float64(centroids))
	}
}
