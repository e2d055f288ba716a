// SPDX-License-Identifier: MIT

package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrNilKernel indicates a convolution without a kernel.
	ErrNilKernel = errors.New("filter: nil kernel")

	// ErrUnknownMode indicates a Mode outside the defined set.
	ErrUnknownMode = errors.New("filter: unknown boundary mode")
)

// filterErrorf wraps err with the name of the failing operation.
func filterErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
