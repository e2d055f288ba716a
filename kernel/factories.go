// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"

	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrBadSigma indicates a non-positive standard deviation for Gaussian.
var ErrBadSigma = errors.New("kernel: sigma must be > 0")

// Uniform returns a kernel of size weights all equal to value.
func Uniform(size, offset int, value float64) (*Kernel, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	values := make([]float64, size)
	for i := range values {
		values[i] = value
	}
	return New(offset, values...), nil
}

// Binomial returns a centered, normalized kernel of binomial coefficients
// C(size-1, i). It approximates a Gaussian with variance (size-1)/4.
func Binomial(size int) (*Kernel, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	n := float64(size - 1)
	values := make([]float64, size)
	for i := range values {
		values[i] = combin.GeneralizedBinomial(n, float64(i))
	}
	return Centered(values...).Normalize(), nil
}

// Gaussian returns a centered, normalized kernel sampling the N(0, sigma²)
// density at each relative index.
func Gaussian(size int, sigma float64) (*Kernel, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	if !(sigma > 0) {
		return nil, ErrBadSigma
	}
	dist := distuv.Normal{Mu: 0, Sigma: sigma}
	k := Centered(make([]float64, size)...)
	for i := k.MinIndex(); i <= k.MaxIndex(); i++ {
		k.values[i+k.offset] = dist.Prob(float64(i))
	}
	return k.Normalize(), nil
}
