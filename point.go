package cbitset

// Test reports whether bit i is set. It returns false if i is out of range.
func (b *Bitset[W]) Test(i int) bool {
	b.copyCheck()
	l := &b.layout
	if !l.inRange(i) {
		return false
	}
	return b.words.load(l.wordIndex(i))&l.bitMask(l.offset(i)) != 0
}

// Set sets bit i to v and reports whether the bit changed. Of several
// concurrent calls flipping the same bit to the same value exactly one
// returns true.
//
// An out of range i is a no-op that returns false.
func (b *Bitset[W]) Set(i int, v bool) bool {
	b.copyCheck()
	l := &b.layout
	if !l.inRange(i) {
		return false
	}
	w := l.wordIndex(i)
	mask := l.bitMask(l.offset(i))
	word := b.words.load(w)
	for {
		next := word &^ mask
		if v {
			next = word | mask
		}
		if next == word {
			return false
		}
		seen, ok := b.words.compareAndSwap(w, word, next)
		if ok {
			return true
		}
		// Another writer changed the word; decide again on what it wrote.
		word = seen
	}
}
