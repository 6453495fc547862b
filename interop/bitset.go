package interop

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/cbitset"
	"github.com/hupe1980/cbitset/internal/conv"
)

// ToBitSet returns a bits-and-blooms BitSet of the same length with the same
// bits set.
func ToBitSet[W cbitset.Word](b *cbitset.Bitset[W]) *bitset.BitSet {
	bs := bitset.New(uint(b.Size()))
	for i := range b.Indices(true) {
		bs.Set(uint(i))
	}
	return bs
}

// FromBitSet returns a Bitset of bs.Len() bits with the same bits set.
// bs.Len() must be a positive multiple of 8.
func FromBitSet[W cbitset.Word](bs *bitset.BitSet) (*cbitset.Bitset[W], error) {
	n, err := conv.UintToInt(bs.Len())
	if err != nil {
		return nil, fmt.Errorf("from bitset: %w", err)
	}
	pattern := make([]bool, n)
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		pattern[i] = true
	}
	b, err := cbitset.FromBools[W](pattern)
	if err != nil {
		return nil, fmt.Errorf("from bitset: %w", err)
	}
	return b, nil
}
