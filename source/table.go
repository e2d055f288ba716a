// SPDX-License-Identifier: MIT

package source

import "github.com/go-logr/logr"

const (
	opAdd        = "Table.Add"
	opAddRows    = "Table.AddRows"
	opSet        = "Table.Set"
	opRemove     = "Table.Remove"
	opRemoveLast = "Table.RemoveLast"
	opRow        = "Table.Row"
)

// Table is the mutable in-memory root Source.
// Cells are stored row-major in a flat slice; the column count is fixed at
// creation and rows grow or shrink only through the mutation methods, each
// of which notifies listeners exactly once on success.
type Table struct {
	Notifier

	c    int       // column count, fixed
	r    int       // row count
	data []float64 // flat backing storage, len == r*c
	log  logr.Logger
}

// NewTable creates an empty table with cols columns.
// Returns ErrBadShape when cols ≤ 0.
func NewTable(cols int, opts ...TableOption) (*Table, error) {
	if cols <= 0 {
		return nil, sourceErrorf("NewTable", ErrBadShape)
	}
	o := defaultTableOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Table{
		c:    cols,
		data: make([]float64, 0, o.capacity*cols),
		log:  o.log,
	}, nil
}

// Get returns the cell at (col, row), or NaN when out of range.
func (t *Table) Get(col, row int) float64 {
	if !inRange(col, row, t.c, t.r) {
		return nan
	}
	return t.data[row*t.c+col]
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return t.r }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return t.c }

// Row returns a copy of row row.
func (t *Table) Row(row int) ([]float64, error) {
	if row < 0 || row >= t.r {
		return nil, sourceErrorf(opRow, ErrOutOfRange)
	}
	out := make([]float64, t.c)
	copy(out, t.data[row*t.c:(row+1)*t.c])
	return out, nil
}

// Add appends one row. Returns ErrRowWidth if len(values) != ColumnCount().
func (t *Table) Add(values ...float64) error {
	if len(values) != t.c {
		return sourceErrorf(opAdd, ErrRowWidth)
	}
	t.data = append(t.data, values...)
	t.r++
	t.log.V(2).Info("row added", "row", t.r-1)
	t.Notify(t)

	return nil
}

// AddRows appends every row in rows with a single notification.
// Widths are validated up front, so either all rows are added or none.
func (t *Table) AddRows(rows [][]float64) error {
	for _, row := range rows {
		if len(row) != t.c {
			return sourceErrorf(opAddRows, ErrRowWidth)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		t.data = append(t.data, row...)
	}
	t.r += len(rows)
	t.log.V(2).Info("rows added", "count", len(rows), "rows", t.r)
	t.Notify(t)

	return nil
}

// Set replaces the cell at (col, row) and returns the previous value.
func (t *Table) Set(col, row int, v float64) (float64, error) {
	if !inRange(col, row, t.c, t.r) {
		return 0, sourceErrorf(opSet, ErrOutOfRange)
	}
	idx := row*t.c + col
	old := t.data[idx]
	t.data[idx] = v
	t.log.V(2).Info("cell set", "col", col, "row", row)
	t.Notify(t)

	return old, nil
}

// Remove deletes row row, shifting later rows up by one.
func (t *Table) Remove(row int) error {
	if row < 0 || row >= t.r {
		return sourceErrorf(opRemove, ErrOutOfRange)
	}
	t.data = append(t.data[:row*t.c], t.data[(row+1)*t.c:]...)
	t.r--
	t.log.V(2).Info("row removed", "row", row)
	t.Notify(t)

	return nil
}

// RemoveLast deletes the final row. Returns ErrEmpty on an empty table.
func (t *Table) RemoveLast() error {
	if t.r == 0 {
		return sourceErrorf(opRemoveLast, ErrEmpty)
	}
	return t.Remove(t.r - 1)
}

// Clear removes every row and notifies listeners.
func (t *Table) Clear() {
	t.data = t.data[:0]
	t.r = 0
	t.log.V(2).Info("table cleared")
	t.Notify(t)
}
