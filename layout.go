package cbitset

import "math/bits"

// layout maps logical bit indexes onto words.
//
// Bits are stored most-significant-bit-first: offset 0 of a word is its
// highest-order bit. Every mask helper below follows that convention, so the
// scan and claim code never deals with bit order directly.
type layout[W Word] struct {
	n     int // logical bits
	bits  int // bits per word
	words int // number of words
}

func newLayout[W Word](n int) layout[W] {
	bpw := wordBits[W]()
	return layout[W]{
		n:     n,
		bits:  bpw,
		words: (n + bpw - 1) / bpw,
	}
}

func (l *layout[W]) inRange(i int) bool {
	return i >= 0 && i < l.n
}

func (l *layout[W]) wordIndex(i int) int {
	return i / l.bits
}

func (l *layout[W]) offset(i int) int {
	return i % l.bits
}

// bitIndex is the inverse of (wordIndex, offset).
func (l *layout[W]) bitIndex(w, off int) int {
	return w*l.bits + off
}

// bitMask returns a word with only the bit at off set.
func (l *layout[W]) bitMask(off int) W {
	return W(1) << (l.bits - 1 - off)
}

// maskFrom returns a right-aligned mask covering offsets [off, bits).
// maskFrom(bits) is zero.
func (l *layout[W]) maskFrom(off int) W {
	return ^W(0) >> off
}

// span returns a mask covering offsets [lo, hi).
func (l *layout[W]) span(lo, hi int) W {
	return l.maskFrom(lo) &^ l.maskFrom(hi)
}

// valid returns the mask of non-padding bits of word w. Only the last word
// can carry padding.
func (l *layout[W]) valid(w int) W {
	if w < l.words-1 {
		return ^W(0)
	}
	return ^l.maskFrom(l.n - w*l.bits)
}

// fill returns a word with every bit equal to v.
func (l *layout[W]) fill(v bool) W {
	if v {
		return ^W(0)
	}
	return 0
}

// first returns the lowest offset set in m. m must be non-zero.
func (l *layout[W]) first(m W) int {
	return bits.LeadingZeros64(uint64(m)) - (64 - l.bits)
}
