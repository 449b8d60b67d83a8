package pointgo

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/pointgo/index"
)

// Logger wraps slog.Logger with pointgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithStrategy adds an index strategy field to the logger.
func (l *Logger) WithStrategy(s index.Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs an index build.
func (l *Logger) LogBuild(ctx context.Context, points int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "index built",
			"points", points,
		)
	}
}

// LogSample logs a sampling operation.
func (l *Logger) LogSample(ctx context.Context, method string, m int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sampling failed",
			"method", method,
			"m", m,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "sampling completed",
			"method", method,
			"m", m,
		)
	}
}

// LogQuery logs a neighborhood query.
func (l *Logger) LogQuery(ctx context.Context, kind string, q, results int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "query failed",
			"kind", kind,
			"q", q,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "query completed",
			"kind", kind,
			"q", q,
			"results", results,
		)
	}
}

// LogGroup logs a sample-and-group run.
func (l *Logger) LogGroup(ctx context.Context, centroids, neighbors int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "grouping failed",
			"centroids", centroids,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "grouping completed",
			"centroids", centroids,
			"neighbors", neighbors,
		)
	}
}
