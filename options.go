package pointgo

import (
	"log/slog"

	"github.com/hupe1980/pointgo/index"
	"github.com/hupe1980/pointgo/resource"
)

type options struct {
	strategy         index.Strategy
	metricsCollector MetricsCollector
	logger           *Logger
	resources        *resource.Controller
}

// Option configures a Cloud.
type Option func(*options)

// WithStrategy selects the spatial index built for the cloud.
// Defaults to index.StrategyKDTree.
func WithStrategy(s index.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &pointgo.BasicMetricsCollector{}
//	cloud, _ := pointgo.New(ps, pointgo.WithMetricsCollector(metrics))
//	// ... use cloud ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, Avg latency: %dns\n", stats.QueryCount, stats.QueryAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := pointgo.NewJSONLogger(slog.LevelInfo)
//	cloud, _ := pointgo.New(ps, pointgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResourceController bounds the workers used by SampleAndGroup.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		strategy:         index.StrategyKDTree,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
