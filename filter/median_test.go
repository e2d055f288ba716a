// SPDX-License-Identifier: MIT

package filter_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdata/filter"
	"github.com/katalvlaran/lvdata/selection"
	"github.com/katalvlaran/lvdata/source"
)

var spiky = []float64{1, 5, 2, 8, 3, 9, 4, 7}

func TestMedian_ShapeAndModes(t *testing.T) {
	tbl := newColumnTable(t, column8, column8)
	md, err := filter.NewMedian(tbl, 3, 1, filter.Repeat, []int{0})
	require.NoError(t, err)

	assert.Equal(t, tbl.RowCount(), md.RowCount())
	assert.Equal(t, tbl.ColumnCount(), md.ColumnCount())
	assert.Equal(t, 3, md.WindowSize())
	assert.Equal(t, 1, md.Offset())

	for _, m := range filter.Modes() {
		require.NoError(t, md.SetMode(m))
		assert.Equal(t, m, md.Mode())
		assert.Equal(t, tbl.RowCount(), md.RowCount())
	}
}

func TestMedian_CenteredWindow(t *testing.T) {
	tbl := newColumnTable(t, spiky)

	repeat, err := filter.NewMedian(tbl, 3, 1, filter.Repeat, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 5, 3, 8, 4, 7, 7}, source.Column(repeat, 0))

	zero, err := filter.NewMedian(tbl, 3, 1, filter.Zero, nil)
	require.NoError(t, err)
	got := source.Column(zero, 0)
	assert.Equal(t, 1.0, got[0], "median{0,1,5}")
	assert.Equal(t, 4.0, got[7], "median{4,7,0}")
}

func TestMedian_EvenWindowAverages(t *testing.T) {
	tbl := newColumnTable(t, spiky)
	md, err := filter.NewMedian(tbl, 4, 1, filter.Repeat, nil)
	require.NoError(t, err)
	// Row 0 window: rows -1,0,1,2 → {1,1,5,2} → (1+2)/2.
	assert.Equal(t, 1.5, md.Get(0, 0))
	// Row 3 window: rows 2..5 → {2,8,3,9} → (3+8)/2.
	assert.Equal(t, 5.5, md.Get(0, 3))
}

func TestMedian_TrailingAndLeadingWindows(t *testing.T) {
	tbl := newColumnTable(t, spiky)

	// offset == windowSize: the window ends just before the current row.
	trailing, err := filter.NewMedian(tbl, 1, 1, filter.Zero, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 5, 2, 8, 3, 9, 4}, source.Column(trailing, 0))

	// offset 0, size 1: identity.
	identity, err := filter.NewMedian(tbl, 1, 0, filter.Omit, nil)
	require.NoError(t, err)
	assert.Equal(t, spiky, source.Column(identity, 0))
}

func TestMedian_OmitPoisonsEdges(t *testing.T) {
	tbl := newColumnTable(t, spiky)
	md, err := filter.NewMedian(tbl, 3, 1, filter.Omit, nil)
	require.NoError(t, err)
	got := source.Column(md, 0)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[7]))
	assert.Equal(t, []float64{2, 5, 3, 8, 4, 7}, got[1:7])
}

func TestMedian_NaNInWindow(t *testing.T) {
	col := append([]float64(nil), spiky...)
	col[4] = math.NaN()
	tbl := newColumnTable(t, col)
	md, err := filter.NewMedian(tbl, 3, 1, filter.Repeat, nil)
	require.NoError(t, err)
	got := source.Column(md, 0)
	assert.Equal(t, 2.0, got[1])
	for _, row := range []int{3, 4, 5} {
		assert.True(t, math.IsNaN(got[row]), "row %d sees the NaN", row)
	}
	assert.Equal(t, 7.0, got[6])
}

func TestMedian_DegenerateWindowIsEmpty(t *testing.T) {
	tbl := newColumnTable(t, spiky)
	md, err := filter.NewMedian(tbl, 0, 0, filter.Repeat, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, md.RowCount())
	assert.True(t, math.IsNaN(md.Get(0, 0)))

	md.SetWindowSize(-2)
	assert.Equal(t, 0, md.RowCount())

	md.SetWindowSize(3)
	md.SetOffset(1)
	assert.Equal(t, 8, md.RowCount())
	assert.Equal(t, 5.0, md.Get(0, 2))
}

func TestMedian_DeterministicAcrossSelectors(t *testing.T) {
	data := rand.New(rand.NewPCG(5, 6))
	col := make([]float64, 64)
	for i := range col {
		col[i] = math.Round(data.NormFloat64() * 4)
	}
	tbl := newColumnTable(t, col)

	base, err := filter.NewMedian(tbl, 5, 2, filter.Mirror, nil)
	require.NoError(t, err)
	want := source.Column(base, 0)

	for seed := uint64(1); seed <= 10; seed++ {
		md, err := filter.NewMedian(tbl, 5, 2, filter.Mirror, nil,
			filter.WithSelector(selection.New(rand.NewPCG(seed, 0))))
		require.NoError(t, err)
		assert.Equal(t, want, source.Column(md, 0), "seed %d", seed)
	}
}

func TestMedian_FollowsUpstream(t *testing.T) {
	tbl := newColumnTable(t, spiky)
	md, err := filter.NewMedian(tbl, 3, 1, filter.Repeat, nil)
	require.NoError(t, err)
	rec := &recorder{}
	md.AddListener(rec)

	require.NoError(t, tbl.Add(0))
	assert.Equal(t, 9, md.RowCount())
	assert.Equal(t, 4.0, md.Get(0, 7), "median{4,7,0}")
	require.NoError(t, tbl.Remove(0))
	assert.Equal(t, 8, md.RowCount())
	assert.Equal(t, 2, rec.calls)

	_, err = filter.NewMedian(nil, 3, 1, filter.Repeat, nil)
	assert.ErrorIs(t, err, source.ErrNilSource)
	_, err = filter.NewMedian(tbl, 3, 1, filter.Mode(7), nil)
	assert.ErrorIs(t, err, filter.ErrUnknownMode)
}

// TestMedian_WindowIsContiguous compares every output row with the median of
// upstream rows [r-offset, r-offset+windowSize-1] resolved through the mode.
func TestMedian_WindowIsContiguous(t *testing.T) {
	tbl := newColumnTable(t, spiky)
	for _, tc := range []struct{ size, offset int }{
		{1, 0}, {2, 0}, {3, 1}, {4, 2}, {5, 0}, {5, 4}, {3, 3},
	} {
		md, err := filter.NewMedian(tbl, tc.size, tc.offset, filter.Mirror, nil)
		require.NoError(t, err)
		for r := 0; r < tbl.RowCount(); r++ {
			window := make([]float64, 0, tc.size)
			for u := r - tc.offset; u <= r-tc.offset+tc.size-1; u++ {
				window = append(window, filter.Mirror.Resolve(tbl, 0, u))
			}
			assert.Equal(t, selection.Median(window), md.Get(0, r),
				"size %d offset %d row %d", tc.size, tc.offset, r)
		}
		md.Detach()
	}
}
