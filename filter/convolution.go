// SPDX-License-Identifier: MIT

package filter

import (
	"math"

	"github.com/katalvlaran/lvdata/kernel"
	"github.com/katalvlaran/lvdata/source"
)

// Convolution replaces each filtered cell by the kernel-weighted sum of its
// neighborhood:
//
//	out[c][r] = Σ_{i=min..max} k.Get(i) · in[c][r+i]
//
// where out-of-range rows resolve through the Mode. The first NaN or ±Inf
// contributing value becomes the cell result unchanged.
type Convolution struct {
	*Filter
	kernel *kernel.Kernel
}

// NewConvolution attaches a convolution of src with a copy of k.
// Empty cols filters every column.
func NewConvolution(src source.Source, k *kernel.Kernel, mode Mode, cols []int, opts ...Option) (*Convolution, error) {
	if src == nil {
		return nil, filterErrorf("NewConvolution", source.ErrNilSource)
	}
	if k == nil {
		return nil, filterErrorf("NewConvolution", ErrNilKernel)
	}
	if !mode.Valid() {
		return nil, filterErrorf("NewConvolution", ErrUnknownMode)
	}
	o := gatherOptions(opts)

	cv := &Convolution{
		Filter: newFilter("convolution", src, mode, cols, o),
		kernel: k.Clone(),
	}
	cv.attach(cv, cv)

	return cv, nil
}

// Kernel returns a copy of the kernel in use.
func (cv *Convolution) Kernel() *kernel.Kernel { return cv.kernel.Clone() }

// SetKernel replaces the kernel with a copy of k and refilters.
func (cv *Convolution) SetKernel(k *kernel.Kernel) error {
	if k == nil {
		return filterErrorf("SetKernel", ErrNilKernel)
	}
	cv.kernel = k.Clone()
	cv.Refresh()
	return nil
}

func (cv *Convolution) outputRows(n int) int { return n }

func (cv *Convolution) filterColumn(col int, dst []float64) {
	k := cv.kernel
	lo, hi := k.MinIndex(), k.MaxIndex()
	var sum, v float64
	for row := range dst {
		sum = 0
		for i := lo; i <= hi; i++ {
			v = cv.original(col, row+i)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				sum = v
				break
			}
			sum += k.Get(i) * v
		}
		dst[row] = sum
	}
}
