package cbitset

import "strings"

// Bitset is a fixed-length bit vector that is safe for concurrent use
// without locks.
//
// A Bitset must be created with New, NewFilled, FromBools or Parse and is
// always handled through the returned pointer. Copying a Bitset by value is
// a programmer error: go vet reports it, and any method called on a copy
// panics.
//
// Single-bit operations are linearizable per word. Multi-word reads (All,
// FindFirst, Count, String) observe each word atomically but may mix states
// of different words under concurrent writes.
type Bitset[W Word] struct {
	_      noCopy
	addr   *Bitset[W]
	layout layout[W]
	words  words[W]
}

// noCopy may be embedded into structs which must not be copied
// after the first use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func newBitset[W Word](n int) (*Bitset[W], error) {
	if n <= 0 || n%8 != 0 {
		return nil, &ErrInvalidLength{Length: n}
	}
	b := &Bitset[W]{layout: newLayout[W](n)}
	b.addr = b
	b.words = newWords[W](b.layout.words)
	return b, nil
}

// New returns a Bitset of n bits, all cleared.
// n must be a positive multiple of 8.
func New[W Word](n int) (*Bitset[W], error) {
	return newBitset[W](n)
}

// MustNew is like New but panics if n is invalid.
func MustNew[W Word](n int) *Bitset[W] {
	b, err := New[W](n)
	if err != nil {
		panic(err)
	}
	return b
}

// NewFilled returns a Bitset of n bits, all equal to v.
func NewFilled[W Word](n int, v bool) (*Bitset[W], error) {
	b, err := newBitset[W](n)
	if err != nil {
		return nil, err
	}
	if v {
		for w := 0; w < b.layout.words; w++ {
			b.words.store(w, b.layout.valid(w))
		}
	}
	return b, nil
}

// FromBools returns a Bitset whose bit i equals pattern[i].
// len(pattern) must be a positive multiple of 8.
func FromBools[W Word](pattern []bool) (*Bitset[W], error) {
	b, err := newBitset[W](len(pattern))
	if err != nil {
		return nil, err
	}
	l := &b.layout
	for w := 0; w < l.words; w++ {
		var word W
		for off := 0; off < l.bits; off++ {
			i := l.bitIndex(w, off)
			if i >= l.n {
				break
			}
			if pattern[i] {
				word |= l.bitMask(off)
			}
		}
		if word != 0 {
			b.words.store(w, word)
		}
	}
	return b, nil
}

// Parse builds a Bitset from the conventional rendering of a fixed-size bit
// set, where the leftmost character is the highest index: s[len(s)-1] is
// bit 0. String renders in the opposite direction, so Parse(s).String() is
// s reversed.
func Parse[W Word](s string) (*Bitset[W], error) {
	pattern := make([]bool, len(s))
	for pos := 0; pos < len(s); pos++ {
		switch s[pos] {
		case '0':
		case '1':
			pattern[len(s)-1-pos] = true
		default:
			return nil, &ErrInvalidPattern{Pos: pos, Char: s[pos]}
		}
	}
	return FromBools[W](pattern)
}

// copyCheck panics if b is not the pointer returned by a constructor.
func (b *Bitset[W]) copyCheck() {
	if b.addr != b {
		panic("cbitset: illegal use of Bitset copied by value or not built by a constructor")
	}
}

// Size returns the number of bits.
func (b *Bitset[W]) Size() int {
	b.copyCheck()
	return b.layout.n
}

// Npos is the sentinel returned by FindFirst and SwapFirst when no bit
// matches. It equals Size.
func (b *Bitset[W]) Npos() int {
	return b.Size()
}

// String renders bits in ascending index order, bit 0 first.
func (b *Bitset[W]) String() string {
	b.copyCheck()
	l := &b.layout
	var sb strings.Builder
	sb.Grow(l.n)
	for w := 0; w < l.words; w++ {
		word := b.words.load(w)
		for off := 0; off < l.bits && l.bitIndex(w, off) < l.n; off++ {
			if word&l.bitMask(off) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}
