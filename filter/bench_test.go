// SPDX-License-Identifier: MIT

package filter_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvdata/filter"
	"github.com/katalvlaran/lvdata/kernel"
	"github.com/katalvlaran/lvdata/source"
)

// benchTable builds a rows×cols table of seeded noise.
func benchTable(b *testing.B, rows, cols int) *source.Table {
	b.Helper()
	rng := rand.New(rand.NewPCG(42, 42))
	tbl, err := source.NewTable(cols, source.WithCapacity(rows))
	if err != nil {
		b.Fatalf("NewTable failed: %v", err)
	}
	data := make([][]float64, rows)
	for r := range data {
		data[r] = make([]float64, cols)
		for c := range data[r] {
			data[r][c] = rng.NormFloat64()
		}
	}
	if err = tbl.AddRows(data); err != nil {
		b.Fatalf("AddRows failed: %v", err)
	}
	return tbl
}

// benchmarkConvolution measures one full rebuild with a Gaussian kernel of size taps.
func benchmarkConvolution(b *testing.B, rows, taps int) {
	tbl := benchTable(b, rows, 2)
	k, err := kernel.Gaussian(taps, float64(taps)/4)
	if err != nil {
		b.Fatalf("Gaussian failed: %v", err)
	}
	cv, err := filter.NewConvolution(tbl, k, filter.Mirror, nil)
	if err != nil {
		b.Fatalf("NewConvolution failed: %v", err)
	}

	b.ResetTimer() // ignore setup and the initial rebuild
	for i := 0; i < b.N; i++ {
		cv.Refresh()
	}
}

// BenchmarkConvolution_Small rebuilds 1k rows with a 5-tap kernel.
func BenchmarkConvolution_Small(b *testing.B) { benchmarkConvolution(b, 1_000, 5) }

// BenchmarkConvolution_WideKernel rebuilds 10k rows with a 31-tap kernel.
func BenchmarkConvolution_WideKernel(b *testing.B) { benchmarkConvolution(b, 10_000, 31) }

// benchmarkMedian measures one full rebuild of a window of size ws.
func benchmarkMedian(b *testing.B, rows, ws int) {
	tbl := benchTable(b, rows, 2)
	md, err := filter.NewMedian(tbl, ws, ws/2, filter.Repeat, nil)
	if err != nil {
		b.Fatalf("NewMedian failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		md.Refresh()
	}
}

// BenchmarkMedian_Small rebuilds 1k rows with a 5-sample window.
func BenchmarkMedian_Small(b *testing.B) { benchmarkMedian(b, 1_000, 5) }

// BenchmarkMedian_WideWindow rebuilds 10k rows with a 51-sample window.
func BenchmarkMedian_WideWindow(b *testing.B) { benchmarkMedian(b, 10_000, 51) }

// BenchmarkPipeline_Append measures one Add propagating through
// Median → Convolution on a 1k-row table.
func BenchmarkPipeline_Append(b *testing.B) {
	tbl := benchTable(b, 1_000, 1)
	md, err := filter.NewMedian(tbl, 5, 2, filter.Repeat, nil)
	if err != nil {
		b.Fatalf("NewMedian failed: %v", err)
	}
	if _, err = filter.NewConvolution(md, kernel.Centered(1, 2, 1).Normalize(), filter.Repeat, nil); err != nil {
		b.Fatalf("NewConvolution failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = tbl.Add(float64(i % 7)); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
		if err = tbl.RemoveLast(); err != nil {
			b.Fatalf("RemoveLast failed: %v", err)
		}
	}
}
