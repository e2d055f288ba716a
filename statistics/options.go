// SPDX-License-Identifier: MIT

package statistics

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvdata/selection"
)

// Option configures a Statistics before its first computation.
type Option func(*options)

type options struct {
	log      logr.Logger
	selector *selection.Selector
}

func gatherOptions(opts []Option) options {
	o := options{log: logr.Discard(), selector: selection.Default}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger routes recompute logs (V(1)) to log.
func WithLogger(log logr.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithSelector sets the selector used for medians. Nil keeps selection.Default.
func WithSelector(s *selection.Selector) Option {
	return func(o *options) {
		if s != nil {
			o.selector = s
		}
	}
}
