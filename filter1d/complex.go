package filter1d

import (
	"fmt"

	"github.com/blurhwy/libblur/edge"
	"github.com/blurhwy/libblur/errs"
	"github.com/blurhwy/libblur/image"
	"github.com/blurhwy/libblur/kernel"
	"github.com/blurhwy/libblur/simd"
	"github.com/blurhwy/libblur/threadpool"
)

// ComplexFilterPass implements filter_1d_complex (§6): separable filtering
// with complex-valued 1-D kernels, used for disc/bokeh-style blur. The
// horizontal pass produces a complex intermediate (a pair of f32 planes);
// the vertical pass accumulates the real part of kx∗ky∗src directly,
// without ever materializing the imaginary component of the final output.
func ComplexFilterPass[T simd.Lanes](src, dst image.View[T], kx, ky kernel.ComplexKernel, modeX, modeY edge.Mode, constant []T, plan threadpool.Plan, pool *threadpool.Pool) error {
	if !image.SameLayout(src, dst) {
		return fmt.Errorf("filter1d: %w: source and destination must share width, height and channel count", errs.ErrLayoutMismatch)
	}
	if modeX == edge.KernelClip || modeY == edge.KernelClip {
		return fmt.Errorf("filter1d: %w: KernelClip is not supported by the complex filter pass", errs.ErrInvalidArgument)
	}
	w, h, cn := src.Width(), src.Height(), src.Channels()

	transientRe, err := image.Alloc[float32](w, h, cn)
	if err != nil {
		return err
	}
	transientIm, err := image.Alloc[float32](w, h, cn)
	if err != nil {
		return err
	}

	plan.Run(pool, h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			complexHorizontalRow(transientRe, transientIm, src, y, kx, modeX, constant)
		}
	})

	var constantF32 []float32
	if modeY == edge.Constant {
		constantF32 = make([]float32, cn)
		for c := range constant {
			constantF32[c] = float32(sampleToF64(constant[c]))
		}
	}
	topRe, bottomRe, err := image.BuildColumnStrips[float32](transientRe, ky.Length(), modeY, constantF32)
	if err != nil {
		return err
	}
	topIm, bottomIm, err := image.BuildColumnStrips[float32](transientIm, ky.Length(), modeY, make([]float32, cn))
	if err != nil {
		return err
	}

	plan.Run(pool, w, func(x0, x1 int) {
		complexVerticalColumns(dst, transientRe, transientIm, topRe, bottomRe, topIm, bottomIm, x0, x1, ky)
	})
	return nil
}

func complexHorizontalRow[T simd.Lanes](dstRe, dstIm image.View[float32], src image.View[T], y int, kx kernel.ComplexKernel, mode edge.Mode, constant []T) {
	w, cn, r := src.Width(), src.Channels(), kx.Radius
	strip, err := image.BuildRowStrip[T](src, y, kx.Length(), mode, constant)
	if err != nil {
		return
	}
	reRow := dstRe.Row(y)
	imRow := dstIm.Row(y)
	for x := 0; x < w; x++ {
		center := r + x
		for c := 0; c < cn; c++ {
			var accRe, accIm float64
			for i := 0; i < kx.Length(); i++ {
				v := sampleToF64(strip[(center+i-r)*cn+c])
				accRe += float64(kx.Re[i]) * v
				accIm += float64(kx.Im[i]) * v
			}
			reRow[x*cn+c] = float32(accRe)
			imRow[x*cn+c] = float32(accIm)
		}
	}
}

func complexVerticalColumns[T simd.Lanes](dst image.View[T], transientRe, transientIm, topRe, bottomRe, topIm, bottomIm image.View[float32], x0, x1 int, ky kernel.ComplexKernel) {
	h, cn, r := transientRe.Height(), transientRe.Channels(), ky.Radius
	for x := x0; x < x1; x++ {
		for y := 0; y < h; y++ {
			for c := 0; c < cn; c++ {
				var acc float64
				for j := 0; j < ky.Length(); j++ {
					yy := y + j - r
					re := float64(readColumnSample(transientRe, topRe, bottomRe, x, yy, c))
					im := float64(readColumnSample(transientIm, topIm, bottomIm, x, yy, c))
					acc += float64(ky.Re[j])*re - float64(ky.Im[j])*im
				}
				dst.Set(x, y, c, f64ToSample[T](acc))
			}
		}
	}
	_ = h
}
