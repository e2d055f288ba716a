// SPDX-License-Identifier: MIT

package histogram

import (
	"math"

	"github.com/go-logr/logr"
)

// DefaultEpsilon pads the upper breakpoint of equal-width histograms so the
// column maximum is counted in the last bin.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "histogram: WithEpsilon: eps must be finite, non-negative"

// Option configures a Histogram before its first rebuild.
type Option func(*options)

type options struct {
	epsilon float64
	log     logr.Logger
}

func gatherOptions(opts []Option) options {
	o := options{epsilon: DefaultEpsilon, log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithEpsilon sets the top-breakpoint padding for equal-width binning.
// Panics if eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *options) { o.epsilon = eps }
}

// WithLogger routes rebuild logs (V(1)) to log.
func WithLogger(log logr.Logger) Option {
	return func(o *options) { o.log = log }
}
