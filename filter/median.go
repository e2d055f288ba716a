// SPDX-License-Identifier: MIT

package filter

import (
	"github.com/gammazero/deque"

	"github.com/katalvlaran/lvdata/selection"
	"github.com/katalvlaran/lvdata/source"
)

// Median replaces each filtered cell by the median of a sliding window.
//
// The window for output row r covers upstream rows
// [r-offset, r-offset+windowSize-1]: offset samples precede the current row
// and windowSize-offset samples start at it. Reads outside the upstream go
// through the Mode; a NaN anywhere in the window makes the cell NaN.
// A non-positive window size produces no rows.
//
// The window is always contiguous. A prefill of rows offset-windowSize..-1
// followed by inserting row r-offset+windowSize does not give that (it skips
// rows between the prefill and the first insert), so the deque is prefilled
// with rows -offset..-offset+windowSize-2 and row r-offset+windowSize-1 is
// pushed for output row r. With windowSize 3 and offset 1, row r reads
// upstream rows r-1, r and r+1.
type Median struct {
	*Filter
	windowSize int
	offset     int
	selector   *selection.Selector
}

// NewMedian attaches a median filter over src. Empty cols filters every column.
func NewMedian(src source.Source, windowSize, offset int, mode Mode, cols []int, opts ...Option) (*Median, error) {
	if src == nil {
		return nil, filterErrorf("NewMedian", source.ErrNilSource)
	}
	if !mode.Valid() {
		return nil, filterErrorf("NewMedian", ErrUnknownMode)
	}
	o := gatherOptions(opts)

	md := &Median{
		Filter:     newFilter("median", src, mode, cols, o),
		windowSize: windowSize,
		offset:     offset,
		selector:   o.selector,
	}
	md.attach(md, md)

	return md, nil
}

// WindowSize returns the number of samples per window.
func (md *Median) WindowSize() int { return md.windowSize }

// SetWindowSize changes the window size and refilters.
func (md *Median) SetWindowSize(n int) {
	md.windowSize = n
	md.Refresh()
}

// Offset returns the number of samples preceding the current row.
func (md *Median) Offset() int { return md.offset }

// SetOffset changes the window offset and refilters.
func (md *Median) SetOffset(n int) {
	md.offset = n
	md.Refresh()
}

func (md *Median) outputRows(n int) int {
	if md.windowSize <= 0 {
		return 0
	}
	return n
}

func (md *Median) filterColumn(col int, dst []float64) {
	if len(dst) == 0 {
		return
	}
	size, first := md.windowSize, -md.offset

	// Prefill with the rows preceding row 0's newest sample.
	var window deque.Deque[float64]
	for row := first; row < first+size-1; row++ {
		window.PushBack(md.original(col, row))
	}

	scratch := make([]float64, size)
	for row := range dst {
		window.PushBack(md.original(col, row+first+size-1))
		for i := range scratch {
			scratch[i] = window.At(i)
		}
		dst[row] = md.selector.Median(scratch)
		window.PopFront()
	}
}
