// SPDX-License-Identifier: MIT

package source

// Series is a read-only view over selected columns of another Source.
// Column i of the series is column cols[i] of the upstream. Upstream change
// notifications are forwarded to the series' own listeners.
type Series struct {
	Notifier

	upstream Source
	cols     []int
}

// NewSeries creates a view of src restricted to cols, in the given order.
// Columns may repeat. Every index must address an existing upstream column.
func NewSeries(src Source, cols ...int) (*Series, error) {
	if src == nil {
		return nil, sourceErrorf("NewSeries", ErrNilSource)
	}
	n := src.ColumnCount()
	for _, c := range cols {
		if c < 0 || c >= n {
			return nil, sourceErrorf("NewSeries", ErrOutOfRange)
		}
	}
	s := &Series{upstream: src, cols: append([]int(nil), cols...)}
	src.AddListener(s)

	return s, nil
}

// Get returns upstream cell (cols[col], row), or NaN when out of range.
func (s *Series) Get(col, row int) float64 {
	if col < 0 || col >= len(s.cols) {
		return nan
	}
	return s.upstream.Get(s.cols[col], row)
}

// RowCount returns the upstream row count.
func (s *Series) RowCount() int { return s.upstream.RowCount() }

// ColumnCount returns the number of selected columns.
func (s *Series) ColumnCount() int { return len(s.cols) }

// DataChanged forwards an upstream change to the series' listeners.
func (s *Series) DataChanged(Source) { s.Notify(s) }

// Detach unsubscribes the series from its upstream.
func (s *Series) Detach() { s.upstream.RemoveListener(s) }
