package interop

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/cbitset"
	"github.com/hupe1980/cbitset/internal/conv"
)

// ToRoaring returns a roaring bitmap holding the indexes of all set bits.
// It fails if the Bitset is too large to be indexed by uint32.
func ToRoaring[W cbitset.Word](b *cbitset.Bitset[W]) (*roaring.Bitmap, error) {
	if _, err := conv.IntToUint32(b.Size() - 1); err != nil {
		return nil, fmt.Errorf("to roaring: %w", err)
	}
	rb := roaring.New()
	for i := range b.Indices(true) {
		rb.Add(uint32(i))
	}
	return rb, nil
}

// FromRoaring returns a Bitset of n bits with exactly the bits in rb set.
// Every index in rb must be below n.
func FromRoaring[W cbitset.Word](rb *roaring.Bitmap, n int) (*cbitset.Bitset[W], error) {
	if n <= 0 || n%8 != 0 {
		return nil, fmt.Errorf("from roaring: %w", &cbitset.ErrInvalidLength{Length: n})
	}
	if !rb.IsEmpty() {
		maxIdx, err := conv.Uint32ToInt(rb.Maximum())
		if err != nil {
			return nil, fmt.Errorf("from roaring: %w", err)
		}
		if maxIdx >= n {
			return nil, fmt.Errorf("from roaring: %w", &cbitset.ErrOutOfRange{Index: maxIdx, Size: n})
		}
	}
	pattern := make([]bool, n)
	it := rb.Iterator()
	for it.HasNext() {
		pattern[it.Next()] = true
	}
	b, err := cbitset.FromBools[W](pattern)
	if err != nil {
		return nil, fmt.Errorf("from roaring: %w", err)
	}
	return b, nil
}
