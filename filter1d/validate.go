package filter1d

import (
	"fmt"

	"github.com/blurhwy/libblur/edge"
	"github.com/blurhwy/libblur/errs"
	"github.com/blurhwy/libblur/image"
	"github.com/blurhwy/libblur/kernel"
	"github.com/blurhwy/libblur/simd"
)

func validate[T simd.Lanes](src, dst image.View[T], kx, ky kernel.Kernel, cfg Config[T]) error {
	if !image.SameLayout(src, dst) {
		return fmt.Errorf("filter1d: %w: source and destination must share width, height and channel count", errs.ErrLayoutMismatch)
	}
	if err := src.CheckedLayout(); err != nil {
		return fmt.Errorf("filter1d: %w", errs.ErrLayoutMismatch)
	}
	if len(kx.Coeffs)%2 == 0 || len(ky.Coeffs)%2 == 0 {
		return fmt.Errorf("filter1d: %w: kernel must be non-empty and of odd length", errs.ErrKernelSizeMismatch)
	}
	needsConstant := cfg.EdgeModeX == edge.Constant || cfg.EdgeModeY == edge.Constant
	if needsConstant && len(cfg.Constant) != src.Channels() {
		return fmt.Errorf("filter1d: %w: constant_scalar must have one value per channel", errs.ErrInvalidArgument)
	}
	if cfg.Accum == kernel.FixedPoint {
		if !isFixedPointSample[T]() {
			return fmt.Errorf("filter1d: %w: fixed-point accumulator requires u8 or u16 samples", errs.ErrInvalidArgument)
		}
		if cfg.EdgeModeX == edge.KernelClip || cfg.EdgeModeY == edge.KernelClip {
			return fmt.Errorf("filter1d: %w: KernelClip is supported only by the exact accumulator", errs.ErrInvalidArgument)
		}
	}
	return nil
}
