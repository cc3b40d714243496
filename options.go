package cudf

import (
	"github.com/DonnieKim411/cudf/codec"
)

type options struct {
	logger      *Logger
	metrics     MetricsCollector
	parallelism int
	compression codec.CompressionType
}

// Option configures Table behavior.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		parallelism: 0, // errgroup default: unbounded
		compression: codec.CompressionLZ4,
	}
}

// WithLogger configures structured logging. If nil is passed, logging is
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures metrics collection. If nil is passed,
// collection is disabled.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithParallelism bounds the number of columns processed concurrently by
// Describe and Snapshot. Zero or negative means no bound.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithCompression configures the compression applied to snapshot chunks.
// The default is LZ4.
func WithCompression(ct codec.CompressionType) Option {
	return func(o *options) {
		o.compression = ct
	}
}
