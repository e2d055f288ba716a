// SPDX-License-Identifier: MIT

package selection_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvdata/selection"
)

// benchmarkSelect selects rank k of n seeded normal values; every iteration
// works on a fresh copy so the input is never pre-partitioned.
func benchmarkSelect(b *testing.B, n int, rank func(n int) int) {
	rng := rand.New(rand.NewPCG(1, 1))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rng.NormFloat64()
	}
	work := make([]float64, n)
	sel := selection.New(rand.NewPCG(2, 2))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, xs)
		if _, err := sel.Select(work, rank(n)); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}

func middle(n int) int { return n / 2 }
func first(int) int { return 0 }

// BenchmarkSelect_Median1k selects the middle rank of 1k values.
func BenchmarkSelect_Median1k(b *testing.B) { benchmarkSelect(b, 1_000, middle) }

// BenchmarkSelect_Median100k selects the middle rank of 100k values.
func BenchmarkSelect_Median100k(b *testing.B) { benchmarkSelect(b, 100_000, middle) }

// BenchmarkSelect_Min100k selects rank 0 of 100k values.
func BenchmarkSelect_Min100k(b *testing.B) { benchmarkSelect(b, 100_000, first) }

// BenchmarkSelect_Duplicates selects the median of 100k values drawn from
// only five distinct numbers.
func BenchmarkSelect_Duplicates(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 3))
	xs := make([]float64, 100_000)
	for i := range xs {
		xs[i] = float64(rng.IntN(5))
	}
	work := make([]float64, len(xs))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, xs)
		_ = selection.Median(work)
	}
}
