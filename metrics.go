package pointgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
// metric/prometheus provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordBuild is called after an index is built over n points.
	RecordBuild(n int, duration time.Duration, err error)

	// RecordSample is called after each sampling operation.
	// method is "fps" or "random", m the number of samples requested.
	RecordSample(method string, m int, duration time.Duration, err error)

	// RecordQuery is called after each neighborhood query.
	// kind is "ball" or "knn", results the number of neighbors returned.
	RecordQuery(kind string, results int, duration time.Duration, err error)

	// RecordGroup is called after each sample-and-group run.
	RecordGroup(centroids int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)          {}
func (NoopMetricsCollector) RecordSample(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordQuery(string, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordGroup(int, time.Duration, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	SampleCount      atomic.Int64
	SampleErrors     atomic.Int64
	SampleTotalNanos atomic.Int64
	QueryCount       atomic.Int64
	QueryErrors      atomic.Int64
	QueryResults     atomic.Int64
	QueryTotalNanos  atomic.Int64
	GroupCount       atomic.Int64
	GroupErrors      atomic.Int64
	GroupCentroids   atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(n int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordSample implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSample(method string, m int, duration time.Duration, err error) {
	b.SampleCount.Add(1)
	b.SampleTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SampleErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(kind string, results int, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
		return
	}
	b.QueryResults.Add(int64(results))
}

// RecordGroup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGroup(centroids int, duration time.Duration, err error) {
	b.GroupCount.Add(1)
	if err != nil {
		b.GroupErrors.Add(1)
		return
	}
	b.GroupCentroids.Add(int64(centroids))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		BuildErrors:    b.BuildErrors.Load(),
		SampleCount:    b.SampleCount.Load(),
		SampleErrors:   b.SampleErrors.Load(),
		SampleAvgNanos: avg(b.SampleTotalNanos.Load(), b.SampleCount.Load()),
		QueryCount:     b.QueryCount.Load(),
		QueryErrors:    b.QueryErrors.Load(),
		QueryResults:   b.QueryResults.Load(),
		QueryAvgNanos:  avg(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		GroupCount:     b.GroupCount.Load(),
		GroupErrors:    b.GroupErrors.Load(),
		GroupCentroids: b.GroupCentroids.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildErrors    int64
	SampleCount    int64
	SampleErrors   int64
	SampleAvgNanos int64
	QueryCount     int64
	QueryErrors    int64
	QueryResults   int64
	QueryAvgNanos  int64
	GroupCount     int64
	GroupErrors    int64
	GroupCentroids int64
}
