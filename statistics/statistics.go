// SPDX-License-Identifier: MIT
// Package: statistics
//
// Purpose:
//   - Maintain descriptive statistics of a source.Source, recomputed in full
//     on every upstream change notification.
//   - Report per column, per row and over the whole source.
//
// Moments:
//   - One pass accumulates N, SUM, SUM2, SUM3, SUM4, MIN, MAX.
//   - Central quantities are closed-form expansions of the raw sums and are
//     NOT normalized by N or by powers of the standard deviation:
//     VARIANCE = SUM2 - MEAN*SUM
//     SKEWNESS = SUM3 - 3*MEAN*SUM2 + 2*MEAN²*SUM
//     KURTOSIS = SUM4 - 4*MEAN*SUM3 + 6*MEAN²*SUM2 - 3*MEAN³*SUM
//   - MEDIAN uses randomized selection over a copy; QUARTILE_1/3 are the
//     interpolated 0.25 and 0.75 sample quantiles of go-moremath
//     Sample.Quantile over a sorted copy.
//   - MEAN_DEVIATION is the first central moment and is identically 0.
//
// Numeric policy:
//   - NaN and ±Inf cells are skipped.
//   - With no finite values: N and the raw sums are 0, MEAN_DEVIATION is 0,
//     everything else is NaN.

package statistics

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvdata/selection"
	"github.com/katalvlaran/lvdata/source"
)

// Key names one statistic.
type Key string

// Statistic keys. Names match the labels used when reporting.
const (
	N             Key = "N"
	Sum           Key = "SUM"
	Sum2          Key = "SUM2"
	Sum3          Key = "SUM3"
	Sum4          Key = "SUM4"
	Min           Key = "MIN"
	Max           Key = "MAX"
	Mean          Key = "MEAN"
	MeanDeviation Key = "MEAN_DEVIATION"
	Variance      Key = "VARIANCE"
	Skewness      Key = "SKEWNESS"
	Kurtosis      Key = "KURTOSIS"
	Median        Key = "MEDIAN"
	Quartile1     Key = "QUARTILE_1"
	Quartile3     Key = "QUARTILE_3"
)

// Keys returns every statistic key.
func Keys() []Key {
	return []Key{N, Sum, Sum2, Sum3, Sum4, Min, Max, Mean, MeanDeviation,
		Variance, Skewness, Kurtosis, Median, Quartile1, Quartile3}
}

// Statistics tracks an upstream source and keeps its statistics current.
type Statistics struct {
	upstream source.Source
	selector *selection.Selector
	log      logr.Logger

	columns []map[Key]float64
	rows    []map[Key]float64
	total   map[Key]float64
}

// New subscribes to src and computes its statistics immediately.
// A nil src yields nil.
func New(src source.Source, opts ...Option) *Statistics {
	if src == nil {
		return nil
	}
	o := gatherOptions(opts)
	s := &Statistics{upstream: src, selector: o.selector, log: o.log}
	src.AddListener(s)
	s.Refresh()

	return s
}

// DataChanged recomputes after an upstream change.
func (s *Statistics) DataChanged(source.Source) { s.Refresh() }

// Detach unsubscribes from the upstream. The last results stay readable.
func (s *Statistics) Detach() { s.upstream.RemoveListener(s) }

// Refresh recomputes every statistic from the upstream.
func (s *Statistics) Refresh() {
	r, c := s.upstream.RowCount(), s.upstream.ColumnCount()

	byCol := make([][]float64, c)
	byRow := make([][]float64, r)
	all := make([]float64, 0, r*c)
	var row, col int
	var v float64
	for row = 0; row < r; row++ {
		for col = 0; col < c; col++ {
			v = s.upstream.Get(col, row)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			byCol[col] = append(byCol[col], v)
			byRow[row] = append(byRow[row], v)
			all = append(all, v)
		}
	}

	columns := make([]map[Key]float64, c)
	for col = range columns {
		columns[col] = s.compute(byCol[col])
	}
	rows := make([]map[Key]float64, r)
	for row = range rows {
		rows[row] = s.compute(byRow[row])
	}

	s.columns, s.rows, s.total = columns, rows, s.compute(all)
	s.log.V(1).Info("statistics rebuilt", "rows", r, "cols", c, "n", s.total[N])
}

// ColumnCount returns the number of columns covered.
func (s *Statistics) ColumnCount() int { return len(s.columns) }

// Get returns statistic key of column col, or NaN for an unknown column or key.
func (s *Statistics) Get(col int, key Key) float64 {
	if col < 0 || col >= len(s.columns) {
		return math.NaN()
	}
	return lookup(s.columns[col], key)
}

// Column returns a copy of every statistic of column col, or nil when out of range.
func (s *Statistics) Column(col int) map[Key]float64 {
	if col < 0 || col >= len(s.columns) {
		return nil
	}
	out := make(map[Key]float64, len(s.columns[col]))
	for k, v := range s.columns[col] {
		out[k] = v
	}
	return out
}

// Row returns statistic key computed across the cells of row row.
func (s *Statistics) Row(row int, key Key) float64 {
	if row < 0 || row >= len(s.rows) {
		return math.NaN()
	}
	return lookup(s.rows[row], key)
}

// Total returns statistic key over every cell of the source.
func (s *Statistics) Total(key Key) float64 {
	return lookup(s.total, key)
}

func lookup(m map[Key]float64, key Key) float64 {
	v, ok := m[key]
	if !ok {
		return math.NaN()
	}
	return v
}

// compute derives every statistic of values, which it may reorder.
func (s *Statistics) compute(values []float64) map[Key]float64 {
	nan := math.NaN()
	out := map[Key]float64{
		N: 0, Sum: 0, Sum2: 0, Sum3: 0, Sum4: 0, MeanDeviation: 0,
		Min: nan, Max: nan, Mean: nan, Variance: nan, Skewness: nan,
		Kurtosis: nan, Median: nan, Quartile1: nan, Quartile3: nan,
	}
	if len(values) == 0 {
		return out
	}

	// Stage 1: single pass over raw powers.
	var sum, sum2, sum3, sum4, x2 float64
	lo, hi := values[0], values[0]
	for _, x := range values {
		x2 = x * x
		sum += x
		sum2 += x2
		sum3 += x2 * x
		sum4 += x2 * x2
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	n := float64(len(values))
	mean := sum / n

	out[N] = n
	out[Sum], out[Sum2], out[Sum3], out[Sum4] = sum, sum2, sum3, sum4
	out[Min], out[Max] = lo, hi
	out[Mean] = mean

	// Stage 2: central sums in closed form.
	out[Variance] = sum2 - mean*sum
	out[Skewness] = sum3 - 3*mean*sum2 + 2*mean*mean*sum
	out[Kurtosis] = sum4 - 4*mean*sum3 + 6*mean*mean*sum2 - 3*mean*mean*mean*sum

	// Stage 3: order statistics.
	sample := stats.Sample{Xs: append([]float64(nil), values...)}
	sample.Sort()
	out[Quartile1] = sample.Quantile(0.25)
	out[Quartile3] = sample.Quantile(0.75)
	out[Median] = s.selector.Median(values)

	return out
}
