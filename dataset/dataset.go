// Package dataset generates the benchmark inputs: an ascending, a
// descending and a uniformly random slice of the same length.
package dataset

import (
	"fmt"
	"math/rand/v2"
)

// Range of values drawn for random datasets, both inclusive.
const (
	MinValue = 1
	MaxValue = 1000
)

// Kind identifies the shape of a dataset.
type Kind int

const (
	Sorted Kind = iota
	ReverseSorted
	Random
)

func (k Kind) String() string {
	switch k {
	case Sorted:
		return "Sorted"
	case ReverseSorted:
		return "Reverse Sorted"
	case Random:
		return "Random"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Source supplies random values. *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed generator seeded with seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Dataset is one generated input.
type Dataset struct {
	Kind   Kind
	Values []int
}

// Triple holds the three datasets of one size, in print order.
type Triple [3]Dataset

// GenF represents a dataset generate function.
type GenF func(size int, rng Source) []int

// AllGenFs returns the generator for every Kind, indexed by Kind.
func AllGenFs() []GenF {
	return []GenF{
		Sorted:        func(size int, _ Source) []int { return Ascending(size) },
		ReverseSorted: func(size int, _ Source) []int { return Descending(size) },
		Random:        Uniform,
	}
}

// Ascending returns [1, 2, ..., size].
func Ascending(size int) []int {
	src := alloc(size)
	for i := range src {
		src[i] = i + 1
	}
	return src
}

// Descending returns [size, size-1, ..., 1].
func Descending(size int) []int {
	src := alloc(size)
	for i := range src {
		src[i] = size - i
	}
	return src
}

// Uniform returns size values drawn independently from [MinValue, MaxValue].
func Uniform(size int, rng Source) []int {
	src := alloc(size)
	for i := range src {
		src[i] = MinValue + rng.IntN(MaxValue-MinValue+1)
	}
	return src
}

// Generate builds the dataset triple for size.
func Generate(size int, rng Source) Triple {
	var t Triple
	for kind, gen := range AllGenFs() {
		t[kind] = Dataset{Kind: Kind(kind), Values: gen(size, rng)}
	}
	return t
}

func alloc(size int) []int {
	if size < 0 {
		panic(fmt.Sprintf("invalid dataset size %d", size))
	}
	return make([]int, size)
}
