package cbitset

import (
	"log/slog"
	"time"
)

type options struct {
	metricsCollector     MetricsCollector
	logger               *Logger
	exhaustedLogInterval time.Duration
}

// Option configures a Pool.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for pool operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &cbitset.BasicMetricsCollector{}
//	p, _ := cbitset.NewPool(1024, cbitset.WithMetricsCollector(metrics))
//	// ... use p ...
//	stats := metrics.GetStats()
//	fmt.Printf("Acquires: %d, Avg wait: %dns\n", stats.AcquireCount, stats.AcquireAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for pool operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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

// WithExhaustedLogInterval sets the minimum interval between two "pool
// exhausted" warnings. Zero logs every occurrence. Defaults to one second.
func WithExhaustedLogInterval(d time.Duration) Option {
	return func(o *options) {
		o.exhaustedLogInterval = d
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector:     NoopMetricsCollector{},
		logger:               NoopLogger(),
		exhaustedLogInterval: time.Second,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
