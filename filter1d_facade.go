package libblur

import (
	"github.com/blurhwy/libblur/filter1d"
	"github.com/blurhwy/libblur/image"
	"github.com/blurhwy/libblur/kernel"
	"github.com/blurhwy/libblur/simd"
)

// Filter1DOptions carries the generic filter_1d_exact/filter_1d_approx
// parameters: a horizontal/vertical kernel pair, the per-axis border
// policy, the constant scalar (one value per channel, used only when an
// edge mode is Constant), and the threading plan. Channel count is not a
// type parameter: it is read from src/dst's image.View.
type Filter1DOptions[T simd.Lanes] struct {
	Kernels              KernelPair
	EdgeModeX, EdgeModeY EdgeMode
	Constant             []T
	Threading            ThreadingPolicy
	Pool                 *Pool
}

// Filter1DExact implements filter_1d_exact<T, AccumT, CN>: separable
// convolution with a floating-point accumulator.
func Filter1DExact[T simd.Lanes](src, dst image.View[T], opts Filter1DOptions[T]) error {
	return filter1d.Run(src, dst, opts.Kernels.KX, opts.Kernels.KY, filter1d.Config[T]{
		Accum:     kernel.Exact,
		EdgeModeX: opts.EdgeModeX,
		EdgeModeY: opts.EdgeModeY,
		Constant:  opts.Constant,
		Plan:      opts.Threading,
		Pool:      opts.Pool,
	})
}

// Filter1DApprox implements filter_1d_approx<T, IntermediateT, AccumT, CN>:
// separable convolution with the fixed-point (Q15, or Q0.7 for 3-tap u8
// kernels) accumulator. u8/u16 samples only.
func Filter1DApprox[T simd.Lanes](src, dst image.View[T], opts Filter1DOptions[T]) error {
	return filter1d.Run(src, dst, opts.Kernels.KX, opts.Kernels.KY, filter1d.Config[T]{
		Accum:     kernel.FixedPoint,
		EdgeModeX: opts.EdgeModeX,
		EdgeModeY: opts.EdgeModeY,
		Constant:  opts.Constant,
		Plan:      opts.Threading,
		Pool:      opts.Pool,
	})
}

// ComplexKernelPair holds the horizontal and vertical complex-valued
// kernels filter_1d_complex convolves with.
type ComplexKernelPair struct {
	KX, KY kernel.ComplexKernel
}

// FilterComplexOptions carries the filter_1d_complex parameters.
type FilterComplexOptions struct {
	Kernels              ComplexKernelPair
	EdgeModeX, EdgeModeY EdgeMode
	Threading            ThreadingPolicy
	Pool                 *Pool
}

// FilterComplex implements filter_1d_complex<T, F, CN>: separable
// filtering with complex-valued 1-D kernels (disc/bokeh-style blur),
// taking the real part of the accumulated product.
func FilterComplex[T simd.Lanes](src, dst image.View[T], opts FilterComplexOptions) error {
	return filter1d.ComplexFilterPass(src, dst, opts.Kernels.KX, opts.Kernels.KY,
		opts.EdgeModeX, opts.EdgeModeY, nil, opts.Threading, opts.Pool)
}
