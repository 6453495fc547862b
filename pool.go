package cbitset

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sys/cpu"
	"golang.org/x/time/rate"
)

// Pool hands out integer slots in [0, Size) to concurrent callers.
//
// Slot ownership lives in a Bitset (set bit = slot in use) and is claimed
// with SwapFirst, so two callers never receive the same slot. A weighted
// semaphore holds one permit per free slot, which lets Acquire block until a
// slot is released instead of spinning.
type Pool struct {
	slots *Bitset[uint64]
	sem   *semaphore.Weighted
	warn  *rate.Limiter
	opts  options

	_ cpu.CacheLinePad
	// hint is where the next claim starts scanning (next fit).
	hint atomic.Int64
	_    cpu.CacheLinePad
}

// NewPool creates a pool of size slots, all free.
// size must be a positive multiple of 8.
func NewPool(size int, optFns ...Option) (*Pool, error) {
	slots, err := New[uint64](size)
	if err != nil {
		return nil, fmt.Errorf("new pool: %w", err)
	}
	o := applyOptions(optFns)
	return &Pool{
		slots: slots,
		sem:   semaphore.NewWeighted(int64(size)),
		warn:  rate.NewLimiter(rate.Every(o.exhaustedLogInterval), 1),
		opts:  o,
	}, nil
}

// Size returns the number of slots.
func (p *Pool) Size() int {
	return p.slots.Size()
}

// InUse returns the number of slots currently held.
func (p *Pool) InUse() int {
	return p.slots.Count()
}

// Held reports whether slot is currently in use.
func (p *Pool) Held(slot int) bool {
	return p.slots.Test(slot)
}

// Acquire blocks until a slot is free, claims it and returns its index.
// It returns ctx.Err() if ctx is done before a slot becomes free.
func (p *Pool) Acquire(ctx context.Context) (int, error) {
	start := time.Now()
	if err := p.sem.Acquire(ctx, 1); err != nil {
		p.opts.metricsCollector.RecordAcquire(time.Since(start), err)
		p.opts.logger.LogAcquire(ctx, -1, err)
		return -1, err
	}
	slot := p.claim()
	p.opts.metricsCollector.RecordAcquire(time.Since(start), nil)
	p.opts.logger.LogAcquire(ctx, slot, nil)
	return slot, nil
}

// TryAcquire claims a free slot without blocking. It returns false if every
// slot is in use.
func (p *Pool) TryAcquire() (int, bool) {
	start := time.Now()
	if !p.sem.TryAcquire(1) {
		p.opts.metricsCollector.RecordExhausted()
		if p.warn.Allow() {
			p.opts.logger.LogExhausted(context.Background(), p.InUse())
		}
		return -1, false
	}
	slot := p.claim()
	p.opts.metricsCollector.RecordAcquire(time.Since(start), nil)
	p.opts.logger.LogAcquire(context.Background(), slot, nil)
	return slot, true
}

// Release returns slot to the pool. Releasing a slot that is not held
// returns ErrSlotNotHeld and leaves the pool unchanged.
func (p *Pool) Release(slot int) error {
	var err error
	switch {
	case slot < 0 || slot >= p.Size():
		err = &ErrOutOfRange{Index: slot, Size: p.Size()}
	case !p.slots.Set(slot, false):
		err = ErrSlotNotHeld
	default:
		// The bit is cleared before the permit is returned, so a permit
		// holder can always find a free bit.
		p.sem.Release(1)
	}
	p.opts.metricsCollector.RecordRelease(err)
	p.opts.logger.LogRelease(context.Background(), slot, err)
	return err
}

// claim flips a free slot to in use. The caller must hold a permit.
func (p *Pool) claim() int {
	n := p.slots.Size()
	for {
		hint := int(p.hint.Load())
		slot := p.slots.SwapFirstFrom(hint, true)
		if slot == n {
			slot = p.slots.SwapFirstUntil(true, hint)
		}
		if slot != n {
			p.hint.Store(int64((slot + 1) % n))
			return slot
		}
		// A free bit exists, but concurrent releases can place it behind
		// the scan while concurrent claims take the ones ahead of it.
		runtime.Gosched()
	}
}
