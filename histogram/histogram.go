// SPDX-License-Identifier: MIT

package histogram

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvdata/source"
)

var (
	// ErrCellCount indicates a non-positive cell count.
	ErrCellCount = errors.New("histogram: cell count must be > 0")

	// ErrBreakCount indicates a wrong number of breakpoint arrays, or an
	// array with fewer than two breakpoints.
	ErrBreakCount = errors.New("histogram: bad breakpoint count")

	// ErrBreaksOrder indicates breakpoints that are not finite and strictly ascending.
	ErrBreaksOrder = errors.New("histogram: breakpoints must be finite and ascending")

	// ErrOutOfRange indicates a column or cell index outside valid bounds.
	ErrOutOfRange = errors.New("histogram: index out of range")
)

func histogramErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Histogram is a Source of per-column bin counts over an upstream Source.
type Histogram struct {
	source.Notifier

	upstream  source.Source
	cellCount int         // > 0 for equal-width mode
	fixed     [][]float64 // caller breakpoints, nil in equal-width mode
	epsilon   float64
	log       logr.Logger

	breaks [][]float64
	counts [][]int64
	r      int // max bins over columns
}

// NewEqualWidth attaches a histogram with cellCount equal-width cells per column.
func NewEqualWidth(src source.Source, cellCount int, opts ...Option) (*Histogram, error) {
	if src == nil {
		return nil, histogramErrorf("NewEqualWidth", source.ErrNilSource)
	}
	if cellCount <= 0 {
		return nil, histogramErrorf("NewEqualWidth", ErrCellCount)
	}
	h := newHistogram(src, gatherOptions(opts))
	h.cellCount = cellCount
	h.attach()

	return h, nil
}

// NewWithBreaks attaches a histogram with explicit breakpoints, one
// ascending array per upstream column. The arrays are copied.
func NewWithBreaks(src source.Source, breaks [][]float64, opts ...Option) (*Histogram, error) {
	if src == nil {
		return nil, histogramErrorf("NewWithBreaks", source.ErrNilSource)
	}
	if len(breaks) != src.ColumnCount() {
		return nil, histogramErrorf("NewWithBreaks", ErrBreakCount)
	}
	fixed := make([][]float64, len(breaks))
	for col, brk := range breaks {
		if len(brk) < 2 {
			return nil, histogramErrorf("NewWithBreaks", ErrBreakCount)
		}
		for i, v := range brk {
			if math.IsNaN(v) || math.IsInf(v, 0) || (i > 0 && v <= brk[i-1]) {
				return nil, histogramErrorf("NewWithBreaks", ErrBreaksOrder)
			}
		}
		fixed[col] = append([]float64(nil), brk...)
	}
	h := newHistogram(src, gatherOptions(opts))
	h.fixed = fixed
	h.attach()

	return h, nil
}

func newHistogram(src source.Source, o options) *Histogram {
	return &Histogram{upstream: src, epsilon: o.epsilon, log: o.log}
}

func (h *Histogram) attach() {
	h.upstream.AddListener(h)
	h.Refresh()
}

// Get returns the count of bin row in column col as a float64.
// Bins past the end of a shorter column read 0; indices outside
// [0,ColumnCount)×[0,RowCount) read NaN.
func (h *Histogram) Get(col, row int) float64 {
	if col < 0 || col >= len(h.counts) || row < 0 || row >= h.r {
		return math.NaN()
	}
	if row >= len(h.counts[col]) {
		return 0
	}
	return float64(h.counts[col][row])
}

// RowCount returns the largest number of bins over all columns.
func (h *Histogram) RowCount() int { return h.r }

// ColumnCount returns the number of binned columns.
func (h *Histogram) ColumnCount() int { return len(h.counts) }

// CellLimits returns the [lower, upper) breakpoints of bin cell in column col.
func (h *Histogram) CellLimits(col, cell int) (lower, upper float64, err error) {
	if col < 0 || col >= len(h.breaks) || cell < 0 || cell >= len(h.breaks[col])-1 {
		return 0, 0, histogramErrorf("CellLimits", ErrOutOfRange)
	}
	return h.breaks[col][cell], h.breaks[col][cell+1], nil
}

// Breaks returns a copy of the breakpoints of column col, or nil when out of range.
func (h *Histogram) Breaks(col int) []float64 {
	if col < 0 || col >= len(h.breaks) {
		return nil
	}
	return append([]float64(nil), h.breaks[col]...)
}

// DataChanged rebuilds after an upstream change.
func (h *Histogram) DataChanged(source.Source) { h.Refresh() }

// Detach unsubscribes from the upstream.
func (h *Histogram) Detach() { h.upstream.RemoveListener(h) }

// Refresh recomputes breakpoints (equal-width mode) and counts in one pass
// over the upstream rows, then notifies listeners.
func (h *Histogram) Refresh() {
	c := len(h.fixed)
	if h.fixed == nil {
		c = h.upstream.ColumnCount()
	}

	breaks := make([][]float64, c)
	counts := make([][]int64, c)
	r := 0
	var col int
	for col = 0; col < c; col++ {
		values := source.Column(h.upstream, col)
		if h.fixed != nil {
			breaks[col] = h.fixed[col]
		} else {
			breaks[col] = h.equalWidthBreaks(values)
		}
		counts[col] = countBins(values, breaks[col])
		if len(counts[col]) > r {
			r = len(counts[col])
		}
	}

	h.breaks, h.counts, h.r = breaks, counts, r
	h.log.V(1).Info("histogram rebuilt", "cols", c, "cells", r)
	h.Notify(h)
}

// equalWidthBreaks returns cellCount+1 breakpoints spanning the finite
// values: min + i*((max-min+ε)/cellCount).
//
// When ε is positive but too small to survive rounding at the magnitude of
// the data, the top breakpoint is lifted to the next float above max.
func (h *Histogram) equalWidthBreaks(values []float64) []float64 {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	lo, hi := 0.0, 0.0
	if len(finite) > 0 {
		lo, hi = stats.Bounds(finite)
	}

	step := (hi - lo + h.epsilon) / float64(h.cellCount)
	brk := make([]float64, h.cellCount+1)
	for i := range brk {
		brk[i] = lo + float64(i)*step
	}
	if h.epsilon > 0 && brk[h.cellCount] <= hi {
		brk[h.cellCount] = math.Nextafter(hi, math.Inf(1))
	}
	return brk
}

// countBins assigns each value to the first half-open bin containing it.
func countBins(values, brk []float64) []int64 {
	counts := make([]int64, len(brk)-1)
	for _, v := range values {
		for i := range counts {
			if v >= brk[i] && v < brk[i+1] {
				counts[i]++
				break
			}
		}
	}
	return counts
}
