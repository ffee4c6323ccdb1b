// Package filter1d implements the separable convolution engine (C6): a
// horizontal pass producing a transient buffer, then a vertical pass
// producing the destination, dispatching between an exact float
// accumulator and a fixed-point integer one per kernel.AccumKind.
package filter1d

import (
	"github.com/blurhwy/libblur/edge"
	"github.com/blurhwy/libblur/image"
	"github.com/blurhwy/libblur/kernel"
	"github.com/blurhwy/libblur/simd"
	"github.com/blurhwy/libblur/threadpool"
)

// Config carries everything Run needs beyond the image views and kernels:
// the accumulator strategy, the border policy per axis, the constant
// scalar (used only when an edge mode is edge.Constant), and the
// threading plan. The zero Config runs Exact, Clamp/Clamp, Adaptive.
type Config[T simd.Lanes] struct {
	Accum                kernel.AccumKind
	EdgeModeX, EdgeModeY edge.Mode
	Constant             []T
	Plan                 threadpool.Plan
	Pool                 *threadpool.Pool
}

// Run performs the separable convolution of src by (kx, ky) into dst.
// src and dst must share width, height, and channel count; dst must be a
// distinct buffer from src (the accurate engine is not in-place, per §6).
func Run[T simd.Lanes](src, dst image.View[T], kx, ky kernel.Kernel, cfg Config[T]) error {
	if err := validate(src, dst, kx, ky, cfg); err != nil {
		return err
	}
	if cfg.Accum == kernel.FixedPoint {
		return runFixedPoint(src, dst, kx, ky, cfg)
	}
	return runExact(src, dst, kx, ky, cfg)
}
