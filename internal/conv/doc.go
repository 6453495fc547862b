// Package conv provides checked integer conversions for the boundary between
// Bitset indexes (int) and the fixed-width index types of other bitmap
// libraries (uint32, uint).
//
// Inside the Bitset itself indexes are bounded by its length and use direct
// casts instead.
package conv
