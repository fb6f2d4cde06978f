// Package harness measures how long a sort routine takes and how much heap
// it allocates, running every measurement on a private copy of the input.
package harness

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"pingcap/talentplan/tidb/sortbench/mergesort"
	"pingcap/talentplan/tidb/sortbench/quicksort"
)

var (
	// ErrRoutinePanicked is returned when the measured routine panics.
	ErrRoutinePanicked = errors.New("sort routine panicked")
	// ErrNotSorted is returned when the routine leaves its input unsorted.
	ErrNotSorted = errors.New("sort routine left input unsorted")
)

// Algorithm is a named routine that sorts its argument in place.
type Algorithm struct {
	Name string
	Sort func(values []int)
}

// MergeSort returns the merge sort algorithm.
func MergeSort() Algorithm {
	return Algorithm{Name: "Merge Sort", Sort: mergesort.MergeSort[int]}
}

// QuickSort returns the quick sort algorithm drawing pivots from rng.
func QuickSort(rng quicksort.Source) Algorithm {
	return Algorithm{
		Name: "Quick Sort",
		Sort: func(values []int) { quicksort.Sort(values, rng) },
	}
}

// Measurement is the outcome of one measured run.
type Measurement struct {
	Elapsed   time.Duration
	PeakBytes uint64
}

// Millis returns the elapsed time in milliseconds.
func (m Measurement) Millis() float64 {
	return float64(m.Elapsed) / float64(time.Millisecond)
}

// KB returns the peak allocation in kilobytes.
func (m Measurement) KB() float64 {
	return float64(m.PeakBytes) / 1024
}

// Measure runs alg on a copy of data. data itself is never modified.
// Only the sort call is inside the tracked window; the copy is made first.
func Measure(alg Algorithm, data []int) (m Measurement, err error) {
	work := make([]int, len(data))
	copy(work, data)

	m, err = run(alg, work)
	if err != nil {
		return Measurement{}, err
	}
	if !slices.IsSorted(work) {
		return Measurement{}, fmt.Errorf("%s: %w", alg.Name, ErrNotSorted)
	}
	return m, nil
}

func run(alg Algorithm, work []int) (m Measurement, err error) {
	session := StartSession()
	defer session.Stop()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %w: %v", alg.Name, ErrRoutinePanicked, r)
		}
	}()

	begin := time.Now()
	alg.Sort(work)
	m.Elapsed = time.Since(begin)
	m.PeakBytes = session.Peak()
	return m, nil
}

// NLogN returns n*log2(n), the comparison count scale of an n log n sort.
// It is 1 for n < 2 so it can be used as a divisor.
func NLogN(n int) float64 {
	if n < 2 {
		return 1
	}
	return float64(n) * math.Log2(float64(n))
}

// PerNLogN returns the elapsed nanoseconds per n*log2(n) unit.
func (m Measurement) PerNLogN(n int) float64 {
	return float64(m.Elapsed.Nanoseconds()) / NLogN(n)
}
