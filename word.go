package cbitset

import (
	"math/bits"
	"sync/atomic"
)

// Word is the set of unsigned integer types a Bitset can be backed by.
//
// The width only changes how many bits share one compare-and-swap; it is not
// observable through the Bitset API.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// wordBits returns the number of bits in W.
func wordBits[W Word]() int {
	return bits.OnesCount64(uint64(^W(0)))
}

// words is an array of W packed MSB-first into 64-bit atomic cells.
//
// sync/atomic has no 8 or 16 bit operations, so narrow words share a cell
// and a word-level compare-and-swap is emulated on the cell. A word never
// straddles two cells.
type words[W Word] struct {
	cells []atomic.Uint64
	bits  int    // bits per word
	lanes int    // words per cell
	lane  uint64 // one word, right aligned
}

func newWords[W Word](n int) words[W] {
	bpw := wordBits[W]()
	lanes := 64 / bpw
	return words[W]{
		cells: make([]atomic.Uint64, (n+lanes-1)/lanes),
		bits:  bpw,
		lanes: lanes,
		lane:  uint64(^W(0)),
	}
}

// locate returns the cell holding word w and the shift of w inside it.
// Word 0 of a cell occupies its most significant bits.
func (a *words[W]) locate(w int) (*atomic.Uint64, int) {
	return &a.cells[w/a.lanes], (a.lanes - 1 - w%a.lanes) * a.bits
}

func (a *words[W]) load(w int) W {
	c, shift := a.locate(w)
	return W(c.Load() >> shift)
}

func (a *words[W]) store(w int, v W) {
	c, shift := a.locate(w)
	if a.lanes == 1 {
		c.Store(uint64(v))
		return
	}
	mask := a.lane << shift
	for {
		cur := c.Load()
		if c.CompareAndSwap(cur, cur&^mask|uint64(v)<<shift) {
			return
		}
	}
}

// compareAndSwap replaces word w with next if it currently holds old.
//
// It has strong semantics: it fails only if word w itself differs from old,
// never because a neighbouring word in the same cell changed. On failure the
// observed value of w is returned so callers can rescan without reloading.
func (a *words[W]) compareAndSwap(w int, old, next W) (W, bool) {
	c, shift := a.locate(w)
	if a.lanes == 1 {
		if c.CompareAndSwap(uint64(old), uint64(next)) {
			return next, true
		}
		return W(c.Load()), false
	}
	mask := a.lane << shift
	for {
		cur := c.Load()
		if seen := W(cur >> shift); seen != old {
			return seen, false
		}
		if c.CompareAndSwap(cur, cur&^mask|uint64(next)<<shift) {
			return next, true
		}
	}
}
