// Package cbitset provides a fixed-length, lock-free bit vector for
// concurrent use.
//
// A Bitset holds N bits (N a positive multiple of 8) in an array of
// atomically updated words. Every mutation is a compare-and-swap on the
// owning word; no operation takes a lock.
//
// # Quick Start
//
//	b, _ := cbitset.New[uint64](1024)
//	b.Set(3, true)           // true: the bit changed
//	b.Set(3, true)           // false: already set
//	b.Test(3)                // true
//	b.FindFirst(true)        // 3
//	b.SwapFirst(true)        // 0: claims the first clear bit
//
// # Claiming Bits
//
// SwapFirst and its range variants find the first bit that is not v and flip
// it to v in one compare-and-swap. Concurrent callers never win the same bit,
// which makes a Bitset a natural free-list:
//
//	slot := b.SwapFirst(true)
//	if slot == b.Npos() {
//	    // everything taken
//	}
//	defer b.Set(slot, false)
//
// Pool wraps this pattern with blocking acquisition, metrics and logging.
//
// # Word Width
//
// The type parameter W (uint8, uint16, uint32 or uint64) selects how many
// bits share a compare-and-swap. It affects contention granularity, not
// results.
//
// # Bit Order
//
// Within a word, bit 0 is the most significant bit. String renders bit 0
// first; Parse accepts the conventional highest-index-first rendering. As a
// result Parse(s).String() is s reversed.
//
// # Consistency
//
// Test, Set and SwapFirst are atomic. All, FindFirst, Count, Indices and
// String read one word at a time and may observe a mix of old and new
// values when other goroutines write concurrently. There is no way to update
// several bits atomically as a unit.
//
// Retry loops are lock-free but not wait-free and cannot be cancelled.
// Callers that need bounded latency must impose their own timeout around
// the call.
//
// # Thread Safety
//
// All methods are safe for concurrent use. Construction is not: a Bitset
// must be fully built before it is shared, and it must not be copied by
// value.
package cbitset
