package cbitset_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/cbitset"
)

// Example demonstrates single-bit operations and scans.
func Example() {
	b, err := cbitset.New[uint64](16)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(b.Set(3, true), b.Set(3, true))
	fmt.Println(b.Test(3), b.FindFirst(true))
	fmt.Println(b.String())
	// Output:
	// true false
	// true 3
	// 0001000000000000
}

// Example_swapFirst demonstrates claiming bits until the set is exhausted.
func Example_swapFirst() {
	b := cbitset.MustNew[uint8](8)

	var claimed []int
	for {
		i := b.SwapFirst(true)
		if i == b.Npos() {
			break
		}
		claimed = append(claimed, i)
	}
	fmt.Println(claimed)
	fmt.Println(b.All(true))
	// Output:
	// [0 1 2 3 4 5 6 7]
	// true
}

// Example_parse shows that String renders in the opposite direction of Parse.
func Example_parse() {
	b, err := cbitset.Parse[uint8]("00000110")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(b.Test(1), b.Test(2))
	fmt.Println(b.String())
	// Output:
	// true true
	// 01100000
}

// Example_pool demonstrates the slot pool.
func Example_pool() {
	p, err := cbitset.NewPool(8)
	if err != nil {
		log.Fatal(err)
	}

	a, _ := p.Acquire(context.Background())
	b, _ := p.Acquire(context.Background())
	fmt.Println(a, b, p.InUse())

	if err := p.Release(a); err != nil {
		log.Fatal(err)
	}
	fmt.Println(p.Release(a))
	// Output:
	// 0 1 2
	// slot not held
}
