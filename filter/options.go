// SPDX-License-Identifier: MIT

package filter

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvdata/selection"
)

// Option configures a filter before its first rebuild.
type Option func(*options)

type options struct {
	log      logr.Logger
	selector *selection.Selector
}

func defaultOptions() options {
	return options{log: logr.Discard(), selector: selection.Default}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger routes rebuild logs (V(1)) to log.
func WithLogger(log logr.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithSelector sets the order-statistic selector used by Median.
// A nil selector keeps selection.Default.
func WithSelector(s *selection.Selector) Option {
	return func(o *options) {
		if s != nil {
			o.selector = s
		}
	}
}
