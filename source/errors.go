// SPDX-License-Identifier: MIT
// Package source: sentinel error set.
// Mutations on a Table either succeed completely or fail with one of these
// sentinels and leave the table untouched. Callers match them via errors.Is.

package source

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a table is created with a non-positive column count.
	ErrBadShape = errors.New("source: invalid shape")

	// ErrRowWidth indicates a row whose width differs from the table column count.
	ErrRowWidth = errors.New("source: row width mismatch")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("source: index out of range")

	// ErrEmpty indicates an operation that needs at least one row.
	ErrEmpty = errors.New("source: no rows")

	// ErrNilSource indicates that a nil upstream Source was supplied.
	ErrNilSource = errors.New("source: nil source")
)

// sourceErrorf wraps err with the name of the failing operation.
func sourceErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
