// SPDX-License-Identifier: MIT

package source

import "math"

// Source is a push-notifying 2D grid of numeric cells.
//
// Get must be defined for 0 ≤ col < ColumnCount() and 0 ≤ row < RowCount().
// Reads outside that range return NaN; implementations never panic on them.
type Source interface {
	// Get returns the cell at (col, row), or NaN when out of range.
	Get(col, row int) float64

	// RowCount returns the number of rows.
	RowCount() int

	// ColumnCount returns the number of columns; identical for every row.
	ColumnCount() int

	// AddListener subscribes l to change notifications.
	AddListener(l Listener)

	// RemoveListener unsubscribes l. Unknown listeners are ignored.
	RemoveListener(l Listener)
}

// Listener receives change notifications from a Source.
// The changed source is passed in full; listeners re-read whatever they need.
type Listener interface {
	DataChanged(src Source)
}

// Column copies column col of src into a new slice.
// An out-of-range column yields a slice of NaN, one per row.
func Column(src Source, col int) []float64 {
	n := src.RowCount()
	out := make([]float64, n)
	for row := 0; row < n; row++ {
		out[row] = src.Get(col, row)
	}
	return out
}

// inRange reports whether (col, row) addresses a cell of an r×c grid.
func inRange(col, row, c, r int) bool {
	return col >= 0 && col < c && row >= 0 && row < r
}

// nan is the out-of-range sentinel for cell reads.
var nan = math.NaN()
