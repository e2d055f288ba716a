// SPDX-License-Identifier: MIT

// Package selection finds order statistics without fully sorting.
//
// Select implements randomized quickselect: the pivot is drawn uniformly at
// random from the remaining range and the slice is split three ways
// (< pivot, == pivot, > pivot), so runs of equal values terminate in one
// pass. Expected time is O(n); the worst case is O(n²).
//
// The pivot sequence is random but the selected value is not: for a given
// input, Select and Median always return the same number.
//
// NaN policy: if the input contains a NaN the result is NaN.
package selection

import (
	"errors"
	"math"
	"math/rand/v2"
)

var (
	// ErrEmpty indicates selection from an empty slice.
	ErrEmpty = errors.New("selection: empty input")

	// ErrRankOutOfRange indicates k outside [0, len(xs)).
	ErrRankOutOfRange = errors.New("selection: rank out of range")
)

// Selector performs randomized quickselect.
// A Selector built from an explicit rand.Source is not safe for concurrent use.
type Selector struct {
	rng *rand.Rand // nil → package-level generator
}

// Default draws pivots from the package-level generator and is safe to share.
var Default = &Selector{}

// New returns a Selector drawing pivots from src. A nil src behaves like Default.
func New(src rand.Source) *Selector {
	if src == nil {
		return &Selector{}
	}
	return &Selector{rng: rand.New(src)}
}

func (s *Selector) intN(n int) int {
	if s == nil || s.rng == nil {
		return rand.IntN(n)
	}
	return s.rng.IntN(n)
}

// Select returns the value that would sit at index k if xs were sorted
// ascending. xs is reordered in place.
func (s *Selector) Select(xs []float64, k int) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	if k < 0 || k >= len(xs) {
		return 0, ErrRankOutOfRange
	}
	if hasNaN(xs) {
		return math.NaN(), nil
	}
	return s.selectRank(xs, k), nil
}

// Median returns the median of xs, reordering xs in place.
// For even lengths it is the mean of ranks n/2-1 and n/2.
// Empty input or any NaN yields NaN.
func (s *Selector) Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 || hasNaN(xs) {
		return math.NaN()
	}
	hi := s.selectRank(xs, n/2)
	if n%2 == 1 {
		return hi
	}
	// After selecting rank n/2, xs[:n/2] holds the lower half; its maximum
	// is rank n/2-1.
	lo := xs[0]
	for _, v := range xs[1 : n/2] {
		if v > lo {
			lo = v
		}
	}
	return (lo + hi) / 2
}

// Select is Default.Select.
func Select(xs []float64, k int) (float64, error) { return Default.Select(xs, k) }

// Median is Default.Median.
func Median(xs []float64) float64 { return Default.Median(xs) }

// selectRank narrows [lo, hi) around rank k until the pivot band covers it.
// On return xs[:k] ≤ xs[k] ≤ xs[k+1:].
func (s *Selector) selectRank(xs []float64, k int) float64 {
	lo, hi := 0, len(xs)
	for hi-lo > 1 {
		pivot := xs[lo+s.intN(hi-lo)]
		lt, gt := partition3(xs, lo, hi, pivot)
		switch {
		case k < lt:
			hi = lt
		case k >= gt:
			lo = gt
		default:
			return pivot
		}
	}
	return xs[k]
}

// partition3 rearranges xs[lo:hi] into < pivot, == pivot, > pivot and
// returns the bounds [lt, gt) of the equal band.
func partition3(xs []float64, lo, hi int, pivot float64) (lt, gt int) {
	lt, i, gt := lo, lo, hi
	for i < gt {
		switch v := xs[i]; {
		case v < pivot:
			xs[lt], xs[i] = xs[i], xs[lt]
			lt++
			i++
		case v > pivot:
			gt--
			xs[gt], xs[i] = xs[i], xs[gt]
		default:
			i++
		}
	}
	return lt, gt
}

func hasNaN(xs []float64) bool {
	for _, v := range xs {
		if v != v {
			return true
		}
	}
	return false
}
