package cbitset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting pool metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAcquire is called after each Acquire or successful TryAcquire.
	// duration includes the time spent waiting for a free slot.
	RecordAcquire(duration time.Duration, err error)

	// RecordRelease is called after each Release.
	RecordRelease(err error)

	// RecordExhausted is called when TryAcquire finds no free slot.
	RecordExhausted()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAcquire(time.Duration, error) {}
func (NoopMetricsCollector) RecordRelease(error)                {}
func (NoopMetricsCollector) RecordExhausted()                   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	AcquireCount      atomic.Int64
	AcquireErrors     atomic.Int64
	AcquireTotalNanos atomic.Int64
	ReleaseCount      atomic.Int64
	ReleaseErrors     atomic.Int64
	ExhaustedCount    atomic.Int64
}

// RecordAcquire implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAcquire(duration time.Duration, err error) {
	b.AcquireCount.Add(1)
	b.AcquireTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AcquireErrors.Add(1)
	}
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(err error) {
	b.ReleaseCount.Add(1)
	if err != nil {
		b.ReleaseErrors.Add(1)
	}
}

// RecordExhausted implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExhausted() {
	b.ExhaustedCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AcquireCount:    b.AcquireCount.Load(),
		AcquireErrors:   b.AcquireErrors.Load(),
		AcquireAvgNanos: b.getAvgAcquireNanos(),
		ReleaseCount:    b.ReleaseCount.Load(),
		ReleaseErrors:   b.ReleaseErrors.Load(),
		ExhaustedCount:  b.ExhaustedCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAcquireNanos() int64 {
	count := b.AcquireCount.Load()
	if count == 0 {
		return 0
	}
	return b.AcquireTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AcquireCount    int64
	AcquireErrors   int64
	AcquireAvgNanos int64
	ReleaseCount    int64
	ReleaseErrors   int64
	ExhaustedCount  int64
}
