// SPDX-License-Identifier: MIT

// Package kernel provides finite 1D weight windows with an explicit center
// offset, used by convolution filters.
//
// A Kernel of size n and offset o covers relative indices
// [MinIndex, MaxIndex] = [-o, n-o-1]. Reads outside that range return 0.
//
//	weights: [ 1   2   1 ]
//	index:    -1   0  +1      (offset = 1)
//
// Arithmetic mutates the receiver in place and returns it, so calls chain:
//
//	k := kernel.Centered(1, 2, 1).Normalize()
package kernel

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrBadSize indicates a kernel factory was asked for a non-positive size.
var ErrBadSize = errors.New("kernel: size must be > 0")

// Kernel is a weight sequence with a center offset.
// The size is fixed after construction; weights are mutable via arithmetic.
type Kernel struct {
	values []float64
	offset int
}

// New creates a kernel whose index 0 sits at values[offset].
// The weights are copied.
func New(offset int, values ...float64) *Kernel {
	return &Kernel{values: append([]float64(nil), values...), offset: offset}
}

// Centered creates a kernel with offset len(values)/2.
// For even lengths the center is the later of the two middle weights.
func Centered(values ...float64) *Kernel {
	return New(len(values)/2, values...)
}

// Size returns the number of weights.
func (k *Kernel) Size() int { return len(k.values) }

// Offset returns the array position of relative index 0.
func (k *Kernel) Offset() int { return k.offset }

// MinIndex returns the lowest valid relative index.
func (k *Kernel) MinIndex() int { return -k.offset }

// MaxIndex returns the highest valid relative index.
func (k *Kernel) MaxIndex() int { return len(k.values) - k.offset - 1 }

// Get returns the weight at relative index i, or 0 outside [MinIndex, MaxIndex].
func (k *Kernel) Get(i int) float64 {
	j := i + k.offset
	if j < 0 || j >= len(k.values) {
		return 0
	}
	return k.values[j]
}

// Values returns a copy of the weights in array order.
func (k *Kernel) Values() []float64 {
	return append([]float64(nil), k.values...)
}

// Clone returns an independent copy of k.
func (k *Kernel) Clone() *Kernel {
	return New(k.offset, k.values...)
}

// AddScalar adds v to every weight.
func (k *Kernel) AddScalar(v float64) *Kernel {
	floats.AddConst(v, k.values)
	return k
}

// MulScalar multiplies every weight by v.
func (k *Kernel) MulScalar(v float64) *Kernel {
	floats.Scale(v, k.values)
	return k
}

// Add adds other's weights index-wise over the smaller kernel's range.
func (k *Kernel) Add(other *Kernel) *Kernel {
	k.combine(other, func(a, b float64) float64 { return a + b })
	return k
}

// Mul multiplies by other's weights index-wise over the smaller kernel's range.
func (k *Kernel) Mul(other *Kernel) *Kernel {
	k.combine(other, func(a, b float64) float64 { return a * b })
	return k
}

// Sum returns the sum of all weights.
func (k *Kernel) Sum() float64 { return floats.Sum(k.values) }

// Normalize divides every weight by the weight sum.
// A zero sum is undefined input and yields Inf/NaN weights.
func (k *Kernel) Normalize() *Kernel {
	return k.MulScalar(1 / k.Sum())
}

// Negate flips the sign of every weight.
func (k *Kernel) Negate() *Kernel {
	return k.MulScalar(-1)
}

// combine applies op at each relative index of the smaller kernel (k's own
// range on ties) that also lies within k. Reads of other go through Get.
func (k *Kernel) combine(other *Kernel, op func(a, b float64) float64) {
	lo, hi := k.MinIndex(), k.MaxIndex()
	if other.Size() < k.Size() {
		lo, hi = other.MinIndex(), other.MaxIndex()
	}
	for i := lo; i <= hi; i++ {
		j := i + k.offset
		if j < 0 || j >= len(k.values) {
			continue
		}
		k.values[j] = op(k.values[j], other.Get(i))
	}
}
