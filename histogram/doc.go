// SPDX-License-Identifier: MIT

// Package histogram bins the columns of a source.Source and republishes the
// bin counts as a Source of their own.
//
// Layout of the published source:
//
//	column = upstream column
//	row    = bin index
//	value  = number of upstream values in the bin
//
// Breakpoints:
//
//   - NewEqualWidth splits [min, max+ε) of every column into cellCount equal
//     cells; breakpoints are recomputed from the data on every rebuild.
//   - NewWithBreaks takes caller-defined ascending breakpoints per column.
//
// Bins are half-open [brk[i], brk[i+1]). A value that falls in no bin
// (outside the breakpoints, NaN) is not counted. ε (DefaultEpsilon, tunable
// with WithEpsilon) pads the top breakpoint so the column maximum lands in
// the last bin; if ε is lost to rounding at large magnitudes the top
// breakpoint becomes the next float above the maximum.
//
// The histogram rebuilds synchronously on every upstream change and then
// notifies its own listeners. It is not safe for concurrent use.
package histogram
