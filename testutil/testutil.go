package testutil

import (
	"math/rand"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Bools returns n pseudo-random booleans.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Bools(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Intn(2) == 1
	}
	return out
}

// BitString returns n pseudo-random '0'/'1' characters.
func (r *RNG) BitString(n int) string {
	return Render(r.Bools(n))
}

// Render formats pattern as '0'/'1' characters, pattern[0] first.
func Render(pattern []bool) string {
	var sb strings.Builder
	sb.Grow(len(pattern))
	for _, v := range pattern {
		if v {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Reverse returns s with its bytes in reverse order.
func Reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// Parallel runs fn on n goroutines and waits for all of them. Workers are
// released together to maximise contention. It returns the first error.
func Parallel(n int, fn func(worker int) error) error {
	var (
		g     errgroup.Group
		start = make(chan struct{})
	)
	for w := 0; w < n; w++ {
		g.Go(func() error {
			<-start
			return fn(w)
		})
	}
	close(start)
	return g.Wait()
}
