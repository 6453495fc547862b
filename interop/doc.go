// Package interop converts between cbitset.Bitset and other bitmap types.
//
// Supported formats:
//   - RoaringBitmap (github.com/RoaringBitmap/roaring/v2): compressed sets of
//     uint32 indexes, useful for set algebra on snapshots.
//   - bits-and-blooms/bitset: dense, non-concurrent bit sets.
//
// Conversions from a Bitset are snapshots taken one word at a time. Under
// concurrent writes they may mix old and new values of different words.
package interop
