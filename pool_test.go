package cbitset

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hupe1980/cbitset/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_AcquireRelease(t *testing.T) {
	p, err := NewPool(16)
	require.NoError(t, err)
	assert.Equal(t, 16, p.Size())

	for want := 0; want < 16; want++ {
		slot, err := p.Acquire(t.Context())
		require.NoError(t, err)
		assert.Equal(t, want, slot)
		assert.True(t, p.Held(slot))
	}
	assert.Equal(t, 16, p.InUse())

	require.NoError(t, p.Release(3))
	assert.False(t, p.Held(3))
	assert.Equal(t, 15, p.InUse())

	// Next fit wraps around to the released slot.
	slot, err := p.Acquire(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, slot)
}

func TestPool_InvalidSize(t *testing.T) {
	_, err := NewPool(10)
	var invalid *ErrInvalidLength
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 10, invalid.Length)
}

func TestPool_TryAcquire(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	p, err := NewPool(8, WithMetricsCollector(metrics))
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		_, ok := p.TryAcquire()
		require.True(t, ok)
	}
	slot, ok := p.TryAcquire()
	assert.False(t, ok)
	assert.Equal(t, -1, slot)

	require.NoError(t, p.Release(6))
	slot, ok = p.TryAcquire()
	assert.True(t, ok)
	assert.Equal(t, 6, slot)

	stats := metrics.GetStats()
	assert.Equal(t, int64(9), stats.AcquireCount)
	assert.Equal(t, int64(0), stats.AcquireErrors)
	assert.Equal(t, int64(1), stats.ExhaustedCount)
	assert.Equal(t, int64(1), stats.ReleaseCount)
}

func TestPool_ReleaseErrors(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	p, err := NewPool(8, WithMetricsCollector(metrics))
	require.NoError(t, err)

	assert.ErrorIs(t, p.Release(2), ErrSlotNotHeld)

	var outOfRange *ErrOutOfRange
	require.ErrorAs(t, p.Release(8), &outOfRange)
	assert.Equal(t, 8, outOfRange.Index)
	assert.Equal(t, 8, outOfRange.Size)
	assert.ErrorAs(t, p.Release(-1), &outOfRange)

	slot, err := p.Acquire(t.Context())
	require.NoError(t, err)
	require.NoError(t, p.Release(slot))
	assert.ErrorIs(t, p.Release(slot), ErrSlotNotHeld, "double release")

	// A failed release must not hand out an extra permit.
	for i := 0; i < 8; i++ {
		_, ok := p.TryAcquire()
		require.True(t, ok)
	}
	_, ok := p.TryAcquire()
	assert.False(t, ok)

	assert.Equal(t, int64(4), metrics.GetStats().ReleaseErrors)
}

func TestPool_AcquireBlocks(t *testing.T) {
	p, err := NewPool(8)
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		_, err := p.Acquire(t.Context())
		require.NoError(t, err)
	}

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	_, err = p.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	done := make(chan int)
	go func() {
		slot, err := p.Acquire(context.Background())
		if err != nil {
			slot = -1
		}
		done <- slot
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, p.Release(5))

	select {
	case slot := <-done:
		assert.Equal(t, 5, slot)
	case <-time.After(5 * time.Second):
		t.Fatal("acquire did not wake up after release")
	}
}

func TestPool_Concurrent(t *testing.T) {
	const (
		size    = 64
		workers = 128
		rounds  = 200
	)
	p, err := NewPool(size)
	require.NoError(t, err)
	owners := make([]atomic.Int32, size)

	err = testutil.Parallel(workers, func(int) error {
		for k := 0; k < rounds; k++ {
			slot, err := p.Acquire(t.Context())
			if err != nil {
				return err
			}
			if owners[slot].Add(1) != 1 {
				t.Errorf("slot %d handed out twice", slot)
			}
			owners[slot].Add(-1)
			if err := p.Release(slot); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, p.InUse())
}

func TestPool_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p, err := NewPool(8, WithLogger(logger), WithExhaustedLogInterval(time.Hour))
	require.NoError(t, err)

	slot, err := p.Acquire(t.Context())
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		_, ok := p.TryAcquire()
		require.True(t, ok)
	}
	for i := 0; i < 3; i++ {
		_, ok := p.TryAcquire()
		require.False(t, ok)
	}
	require.NoError(t, p.Release(slot))
	assert.Error(t, p.Release(slot))

	out := buf.String()
	assert.Equal(t, 8, strings.Count(out, `"msg":"slot acquired"`))
	assert.Equal(t, 1, strings.Count(out, `"msg":"pool exhausted"`), "exhaustion warnings are rate limited")
	assert.Contains(t, out, `"in_use":8`)
	assert.Equal(t, 1, strings.Count(out, `"msg":"slot released"`))
	assert.Equal(t, 1, strings.Count(out, `"msg":"release failed"`))
}

func TestPool_NilOptions(t *testing.T) {
	p, err := NewPool(8, nil, WithLogger(nil), WithMetricsCollector(nil))
	require.NoError(t, err)

	slot, err := p.Acquire(t.Context())
	require.NoError(t, err)
	assert.NoError(t, p.Release(slot))
}
