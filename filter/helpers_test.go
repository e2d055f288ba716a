// SPDX-License-Identifier: MIT

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdata/source"
)

// column8 is the 8-row fixture used across boundary tests.
var column8 = []float64{1, 2, 3, 4, 5, 6, 7, 8}

// newColumnTable builds a table with one column per slice; all slices must
// have the same length.
func newColumnTable(t *testing.T, cols ...[]float64) *source.Table {
	t.Helper()
	tbl, err := source.NewTable(len(cols))
	require.NoError(t, err)
	rows := make([][]float64, len(cols[0]))
	for r := range rows {
		rows[r] = make([]float64, len(cols))
		for c := range cols {
			rows[r][c] = cols[c][r]
		}
	}
	require.NoError(t, tbl.AddRows(rows))
	return tbl
}

// recorder counts notifications and captures the notifying source.
type recorder struct {
	calls int
	last  source.Source
}

func (r *recorder) DataChanged(src source.Source) {
	r.calls++
	r.last = src
}

// hook runs fn on every notification.
type hook struct{ fn func(source.Source) }

func (h *hook) DataChanged(src source.Source) { h.fn(src) }
