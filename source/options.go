// SPDX-License-Identifier: MIT

package source

import "github.com/go-logr/logr"

// DefaultCapacity is the number of rows a Table preallocates.
const DefaultCapacity = 16

// TableOption configures a Table before creation.
type TableOption func(*tableOptions)

type tableOptions struct {
	capacity int
	log      logr.Logger
}

func defaultTableOptions() tableOptions {
	return tableOptions{capacity: DefaultCapacity, log: logr.Discard()}
}

// WithCapacity preallocates storage for rows rows. Non-positive values keep the default.
func WithCapacity(rows int) TableOption {
	return func(o *tableOptions) {
		if rows > 0 {
			o.capacity = rows
		}
	}
}

// WithLogger routes table mutation logs (V(2)) to log.
func WithLogger(log logr.Logger) TableOption {
	return func(o *tableOptions) { o.log = log }
}
