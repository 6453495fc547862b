package cbitset

import (
	"iter"
	"math/bits"
)

// All reports whether every bit equals v.
func (b *Bitset[W]) All(v bool) bool {
	return b.AllFrom(0, v)
}

// AllFrom reports whether every bit at or after i equals v. It returns false
// if i is out of range.
func (b *Bitset[W]) AllFrom(i int, v bool) bool {
	b.copyCheck()
	l := &b.layout
	if !l.inRange(i) {
		return false
	}
	target := l.fill(v)
	lo := l.offset(i)
	for w := l.wordIndex(i); w < l.words; w++ {
		mask := l.maskFrom(lo) & l.valid(w)
		if (b.words.load(w)^target)&mask != 0 {
			return false
		}
		lo = 0
	}
	return true
}

// FindFirst returns the index of the first bit equal to v, or Npos.
func (b *Bitset[W]) FindFirst(v bool) int {
	return b.FindFirstFrom(0, v)
}

// FindFirstFrom returns the index of the first bit at or after i equal to v,
// or Npos if there is none or i is out of range.
func (b *Bitset[W]) FindFirstFrom(i int, v bool) int {
	b.copyCheck()
	l := &b.layout
	if !l.inRange(i) {
		return l.n
	}
	target := l.fill(v)
	lo := l.offset(i)
	for w := l.wordIndex(i); w < l.words; w++ {
		// Ones mark bits equal to v. A word that is entirely !v yields zero.
		match := ^(b.words.load(w) ^ target) & l.maskFrom(lo) & l.valid(w)
		if match != 0 {
			return l.bitIndex(w, l.first(match))
		}
		lo = 0
	}
	return l.n
}

// Count returns the number of set bits.
func (b *Bitset[W]) Count() int {
	b.copyCheck()
	l := &b.layout
	count := 0
	for w := 0; w < l.words; w++ {
		count += bits.OnesCount64(uint64(b.words.load(w) & l.valid(w)))
	}
	return count
}

// Indices returns an iterator over the indexes of bits equal to v, in
// ascending order. Bits changed behind the iterator are not revisited.
func (b *Bitset[W]) Indices(v bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		n := b.Size()
		for i := b.FindFirstFrom(0, v); i < n; i = b.FindFirstFrom(i+1, v) {
			if !yield(i) {
				return
			}
		}
	}
}
