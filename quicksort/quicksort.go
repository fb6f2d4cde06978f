// Package quicksort implements an in-place quick sort with Lomuto
// partitioning and a randomly chosen pivot.
package quicksort

import "cmp"

// Source supplies pivot positions. *math/rand/v2.Rand satisfies it.
type Source interface {
	// IntN returns a uniform value in [0, n). n > 0.
	IntN(n int) int
}

// Partition picks a pivot uniformly from src[low..high], moves it to its
// final sorted position and returns that position. Elements left of it
// are <= the pivot, elements right of it are > the pivot.
func Partition[E cmp.Ordered](src []E, low, high int, rng Source) int {
	pivotIdx := low + rng.IntN(high-low+1)
	src[pivotIdx], src[high] = src[high], src[pivotIdx]

	pivot := src[high]
	i := low - 1
	for j := low; j < high; j++ {
		if src[j] <= pivot {
			i++
			src[i], src[j] = src[j], src[i]
		}
	}
	src[i+1], src[high] = src[high], src[i+1]
	return i + 1
}

// QuickSort sorts src[low..high] (both inclusive) in place.
// It does nothing when low >= high.
func QuickSort[E cmp.Ordered](src []E, low, high int, rng Source) {
	if low < high {
		p := Partition(src, low, high, rng)
		QuickSort(src, low, p-1, rng)
		QuickSort(src, p+1, high, rng)
	}
}

// Sort sorts all of src in ascending order.
func Sort[E cmp.Ordered](src []E, rng Source) {
	QuickSort(src, 0, len(src)-1, rng)
}
