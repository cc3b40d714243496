package cudf

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordDescribe is called after each table describe operation.
	// columns is the number of columns summarized, duration is the total
	// time taken, err is nil if successful.
	RecordDescribe(columns int, duration time.Duration, err error)

	// RecordSnapshot is called after each table snapshot operation.
	// bytes is the total encoded size across all chunks.
	RecordSnapshot(columns, bytes int, duration time.Duration, err error)

	// RecordRestore is called after each snapshot restore operation.
	RecordRestore(columns int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDescribe(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordSnapshot(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRestore(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DescribeCount      atomic.Int64
	DescribeErrors     atomic.Int64
	DescribeTotalNanos atomic.Int64
	SnapshotCount      atomic.Int64
	SnapshotErrors     atomic.Int64
	SnapshotBytes      atomic.Int64
	RestoreCount       atomic.Int64
	RestoreErrors      atomic.Int64
}

// RecordDescribe implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDescribe(columns int, duration time.Duration, err error) {
	b.DescribeCount.Add(1)
	b.DescribeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DescribeErrors.Add(1)
	}
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(columns, bytes int, duration time.Duration, err error) {
	b.SnapshotCount.Add(1)
	b.SnapshotBytes.Add(int64(bytes))
	if err != nil {
		b.SnapshotErrors.Add(1)
	}
}

// RecordRestore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRestore(columns int, duration time.Duration, err error) {
	b.RestoreCount.Add(1)
	if err != nil {
		b.RestoreErrors.Add(1)
	}
}
