// SPDX-License-Identifier: MIT

package filter

import (
	"math"

	"github.com/katalvlaran/lvdata/source"
)

// Mode selects how reads outside the upstream row range are resolved.
type Mode int

const (
	// Omit resolves out-of-range reads to NaN.
	Omit Mode = iota

	// Zero resolves out-of-range reads to 0.
	Zero

	// Repeat clamps the row to [0, last].
	Repeat

	// Mirror reflects the row off the first and last rows.
	// A single-row source falls back to Repeat.
	Mirror

	// Circular resolves the row to |row| mod rowCount.
	Circular
)

var modeNames = [...]string{"Omit", "Zero", "Repeat", "Mirror", "Circular"}

// Modes returns every defined Mode in declaration order.
func Modes() []Mode {
	return []Mode{Omit, Zero, Repeat, Mirror, Circular}
}

// Valid reports whether m is a defined Mode.
func (m Mode) Valid() bool { return m >= Omit && m <= Circular }

// String implements fmt.Stringer.
func (m Mode) String() string {
	if !m.Valid() {
		return "Mode(?)"
	}
	return modeNames[m]
}

// Resolve reads column col of src at row, applying m when row lies outside
// [0, src.RowCount()). An empty source or an unknown mode yields NaN.
func (m Mode) Resolve(src source.Source, col, row int) float64 {
	n := src.RowCount()
	if n == 0 {
		return math.NaN()
	}
	if row >= 0 && row < n {
		return src.Get(col, row)
	}
	last := n - 1

	switch m {
	case Omit:
		return math.NaN()
	case Zero:
		return 0
	case Repeat:
		return src.Get(col, clamp(row, last))
	case Mirror:
		if last == 0 {
			return src.Get(col, 0)
		}
		a := abs(row)
		rem, mod := a/last, a%last
		if rem%2 == 0 {
			return src.Get(col, mod)
		}
		return src.Get(col, last-mod)
	case Circular:
		return src.Get(col, abs(row)%n)
	default:
		return math.NaN()
	}
}

func clamp(row, last int) int {
	if row < 0 {
		return 0
	}
	if row > last {
		return last
	}
	return row
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
