// Package libblur implements separable 2-D image blurring: an accurate
// Gaussian convolution engine (Filter1D) and two O(1)-per-pixel rolling-
// integral approximations (FastGaussian, FastGaussianNext).
//
// Images are addressed through image.View[T]: width × height × channels
// (CN ∈ {1,3,4}) interleaved samples, row stride ≥ width*CN. Callers build
// a view with image.Alloc or image.WithStride and pass it to one of the
// entry points below; every entry point validates its arguments and
// returns one of the errs sentinels rather than panicking.
package libblur

import (
	"github.com/blurhwy/libblur/edge"
	"github.com/blurhwy/libblur/kernel"
	"github.com/blurhwy/libblur/simd"
	"github.com/blurhwy/libblur/threadpool"
)

// Dispatch reports the SIMD capability level the simd package has
// detected at runtime (e.g. "avx2", "neon", "scalar") and its native
// vector width in bytes. Filter1D's Exact accumulator routes its row and
// column sweeps through simd.Vec/FMA for float32/float64/Float16 samples;
// u8/u16 samples, the FixedPoint accumulator, and both FastGaussian
// engines keep a scalar interior regardless of the detected level (see
// DESIGN.md). Dispatch exists so callers and diagnostics can observe the
// underlying capability independent of which path a given call takes.
func Dispatch() (level string, widthBytes int) {
	return simd.CurrentName(), simd.CurrentWidth()
}

// ConvolutionMode selects the Filter1D accumulator strategy. The zero
// value is Exact.
type ConvolutionMode = kernel.AccumKind

const (
	// Exact keeps a floating-point running sum for the full kernel.
	Exact = kernel.Exact
	// FixedPoint keeps a scaled integer accumulator (Q15, or Q0.7 for
	// 3-tap u8 kernels); u8/u16 samples only.
	FixedPoint = kernel.FixedPoint
)

// EdgeMode selects how a pass samples past the image border.
type EdgeMode = edge.Mode

const (
	Clamp      = edge.Clamp
	Reflect    = edge.Reflect
	Reflect101 = edge.Reflect101
	Wrap       = edge.Wrap
	Constant   = edge.Constant
	KernelClip = edge.KernelClip
)

// ThreadingPolicy selects how an axis's rows or columns are partitioned
// across a Pool. The zero value is Adaptive.
type ThreadingPolicy = threadpool.Plan

// Policy is the ThreadingPolicy.Policy field's type: Adaptive, Single, or
// Fixed (see threadpool.Policy).
type Policy = threadpool.Policy

const (
	Adaptive = threadpool.Adaptive
	Single   = threadpool.Single
	Fixed    = threadpool.Fixed
)

// Pool is a persistent worker pool shared across calls; nil runs every
// policy inline on the calling goroutine.
type Pool = threadpool.Pool

// NewPool starts a Pool of numWorkers goroutines.
func NewPool(numWorkers int) *Pool { return threadpool.New(numWorkers) }

// Kernel is a normalized, odd-length 1-D convolution kernel.
type Kernel = kernel.Kernel

// KernelPair holds the horizontal and vertical 1-D kernels a separable
// filter applies; isotropic blur is KernelPair{g, g} for a single g.
type KernelPair struct {
	KX, KY Kernel
}

// Gaussian1D derives a normalized Gaussian kernel from a length, a sigma,
// or both (see kernel.Gaussian1D for the derivation rules).
func Gaussian1D(length int, sigma float64) (Kernel, error) {
	return kernel.Gaussian1D(length, sigma)
}

// Box1D builds a uniform box kernel of the given radius. Exported as a
// convenience constructor; it is not wired into any blur entry point
// below.
func Box1D(radius int) Kernel {
	return kernel.Box1D(radius)
}

// gaussianPair derives a single Gaussian kernel from (length, sigma) and
// pairs it with itself for isotropic horizontal/vertical use.
func gaussianPair(length int, sigma float64) (KernelPair, error) {
	g, err := kernel.Gaussian1D(length, sigma)
	if err != nil {
		return KernelPair{}, err
	}
	return KernelPair{KX: g, KY: g}, nil
}
