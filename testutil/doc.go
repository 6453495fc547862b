// Package testutil provides testing utilities for cbitset.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Bit Patterns
//
//	rng := testutil.NewRNG(seed)
//	pattern := rng.Bools(1024)      // pattern[i] is bit i
//	s := rng.BitString(1024)        // highest index first, for cbitset.Parse
//	order := rng.Perm(1024)         // shuffled indexes
//
// # Concurrency
//
//	err := testutil.Parallel(64, func(worker int) error {
//	    // runs on its own goroutine
//	    return nil
//	})
package testutil
