// Package mergesort implements a stable top-down merge sort.
package mergesort

import "cmp"

// Merge merges the sorted slices left and right into dst.
// dst must have room for len(left)+len(right) elements and must not
// overlap either input. On equal elements the one from left goes first.
func Merge[E any](dst, left, right []E, cmp func(a, b E) int) {
	leftPtr, rightPtr, k := 0, 0, 0
	for leftPtr < len(left) && rightPtr < len(right) {
		if cmp(left[leftPtr], right[rightPtr]) <= 0 {
			dst[k] = left[leftPtr]
			leftPtr++
		} else {
			dst[k] = right[rightPtr]
			rightPtr++
		}
		k++
	}
	k += copy(dst[k:], left[leftPtr:])
	copy(dst[k:], right[rightPtr:])
}

// MergeSortFunc sorts src in place using cmp. It is stable.
func MergeSortFunc[E any](src []E, cmp func(a, b E) int) {
	length := len(src)
	if length <= 1 {
		return
	}
	mid := length / 2
	left := make([]E, mid)
	right := make([]E, length-mid)
	copy(left, src[:mid])
	copy(right, src[mid:])

	MergeSortFunc(left, cmp)
	MergeSortFunc(right, cmp)
	Merge(src, left, right, cmp)
}

// MergeSort sorts src in ascending order.
func MergeSort[E cmp.Ordered](src []E) {
	MergeSortFunc(src, cmp.Compare[E])
}
