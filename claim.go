package cbitset

// SwapFirst atomically flips the first bit that is not v to v and returns
// its index, or Npos if every bit already equals v.
func (b *Bitset[W]) SwapFirst(v bool) int {
	return b.SwapFirstIn(0, v, b.Size())
}

// SwapFirstFrom is SwapFirst restricted to bits at or after from.
func (b *Bitset[W]) SwapFirstFrom(from int, v bool) int {
	return b.SwapFirstIn(from, v, b.Size())
}

// SwapFirstUntil is SwapFirst restricted to bits before limit.
func (b *Bitset[W]) SwapFirstUntil(v bool, limit int) int {
	return b.SwapFirstIn(0, v, limit)
}

// SwapFirstIn atomically flips the first bit in [from, limit) that is not v
// to v and returns its index. If no such bit exists it returns Npos and
// changes nothing. A limit beyond Size is clamped.
//
// Each flip is a single compare-and-swap on the owning word, so concurrent
// callers never win the same bit: with k callers racing on a window holding
// k eligible bits, each gets a distinct index.
//
// The call never blocks, but under sustained contention on one word it may
// retry an unbounded number of times. It cannot be cancelled.
func (b *Bitset[W]) SwapFirstIn(from int, v bool, limit int) int {
	b.copyCheck()
	l := &b.layout
	if !l.inRange(from) {
		return l.n
	}
	limit = min(limit, l.n)
	if limit <= from {
		return l.n
	}
	target := l.fill(v)
	last := limit - 1
	lastWord := l.wordIndex(last)
	lo := l.offset(from)
	for w := l.wordIndex(from); w <= lastWord; w++ {
		hi := l.bits
		if w == lastWord {
			hi = l.offset(last) + 1
		}
		word := b.words.load(w)
		for {
			candidates := (word ^ target) & l.span(lo, hi)
			if candidates == 0 {
				break
			}
			off := l.first(candidates)
			seen, ok := b.words.compareAndSwap(w, word, word^l.bitMask(off))
			if ok {
				return l.bitIndex(w, off)
			}
			// Lost the race for this word. Rescan from the same offset
			// against what the winner left behind.
			word = seen
			lo = off
		}
		lo = 0
	}
	return l.n
}
