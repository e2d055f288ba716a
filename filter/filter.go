// SPDX-License-Identifier: MIT

package filter

import (
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvdata/source"
)

// algorithm is the per-column computation a concrete filter plugs into Filter.
type algorithm interface {
	// outputRows returns how many rows are produced for n upstream rows.
	outputRows(n int) int

	// filterColumn writes the filtered values of column col into dst,
	// which has outputRows(n) elements.
	filterColumn(col int, dst []float64)
}

// Filter is the shared machinery behind Convolution and Median: it owns the
// row cache, the upstream subscription, the filtered column set and the
// boundary Mode. It is used through the concrete filter types.
type Filter struct {
	source.Notifier

	upstream source.Source
	self     source.Source // value handed to listeners
	algo     algorithm
	kind     string

	cols map[int]struct{} // nil → every column
	mode Mode

	r, c int       // cached shape
	data []float64 // row-major cache, len == r*c

	log logr.Logger
}

// newFilter prepares an unattached filter. The caller wires algo and self,
// then calls attach.
func newFilter(kind string, src source.Source, mode Mode, cols []int, o options) *Filter {
	f := &Filter{
		upstream: src,
		kind:     kind,
		mode:     mode,
		log:      o.log.WithValues("filter", kind),
	}
	if len(cols) > 0 {
		f.cols = make(map[int]struct{}, len(cols))
		for _, c := range cols {
			f.cols[c] = struct{}{}
		}
	}
	return f
}

// attach subscribes to the upstream and performs the initial rebuild.
func (f *Filter) attach(self source.Source, algo algorithm) {
	f.self, f.algo = self, algo
	f.upstream.AddListener(f)
	f.Refresh()
}

// Get returns the cached cell at (col, row), or NaN when out of range.
func (f *Filter) Get(col, row int) float64 {
	if col < 0 || col >= f.c || row < 0 || row >= f.r {
		return math.NaN()
	}
	return f.data[row*f.c+col]
}

// RowCount returns the number of filtered rows.
func (f *Filter) RowCount() int { return f.r }

// ColumnCount returns the number of columns, equal to the upstream's.
func (f *Filter) ColumnCount() int { return f.c }

// Upstream returns the source being filtered.
func (f *Filter) Upstream() source.Source { return f.upstream }

// Mode returns the boundary mode.
func (f *Filter) Mode() Mode { return f.mode }

// SetMode changes the boundary mode and refilters.
func (f *Filter) SetMode(m Mode) error {
	if !m.Valid() {
		return filterErrorf("SetMode", ErrUnknownMode)
	}
	f.mode = m
	f.Refresh()
	return nil
}

// IsColumnFiltered reports whether column col is transformed.
// With no configured columns every column is filtered.
func (f *Filter) IsColumnFiltered(col int) bool {
	if f.cols == nil {
		return true
	}
	_, ok := f.cols[col]
	return ok
}

// DataChanged rebuilds the cache after an upstream change.
func (f *Filter) DataChanged(source.Source) { f.Refresh() }

// Detach unsubscribes from the upstream. The cache keeps its last contents.
func (f *Filter) Detach() { f.upstream.RemoveListener(f) }

// Refresh rebuilds the cache from the upstream and notifies listeners.
// The new cache is built aside and swapped in whole, so readers never see
// a partially populated result.
func (f *Filter) Refresh() {
	n, c := f.upstream.RowCount(), f.upstream.ColumnCount()
	r := f.algo.outputRows(n)
	data := make([]float64, r*c)

	column := make([]float64, r)
	var row, col int
	for col = 0; col < c; col++ {
		if f.IsColumnFiltered(col) {
			f.algo.filterColumn(col, column)
		} else {
			for row = 0; row < r; row++ {
				column[row] = f.original(col, row)
			}
		}
		for row = 0; row < r; row++ {
			data[row*c+col] = column[row]
		}
	}

	f.r, f.c, f.data = r, c, data
	f.log.V(1).Info("filter rebuilt", "mode", f.mode.String(), "rows", r, "cols", c)
	f.Notify(f.self)
}

// original reads the upstream through the boundary mode.
func (f *Filter) original(col, row int) float64 {
	return f.mode.Resolve(f.upstream, col, row)
}
