package filter1d

import (
	"github.com/blurhwy/libblur/edge"
	"github.com/blurhwy/libblur/image"
	"github.com/blurhwy/libblur/kernel"
	"github.com/blurhwy/libblur/simd"
)

// runExact implements the accurate (float) accumulator path: one transient
// buffer shaped like dst, a horizontal pass writing it from src, a vertical
// pass writing dst from it. Per §4.6.
func runExact[T simd.Lanes](src, dst image.View[T], kx, ky kernel.Kernel, cfg Config[T]) error {
	transient, err := image.Alloc[T](src.Width(), src.Height(), src.Channels())
	if err != nil {
		return err
	}

	cfg.Plan.Run(cfg.Pool, src.Height(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			horizontalPassRowExact(transient, src, y, kx, cfg.EdgeModeX, cfg.Constant)
		}
	})

	var top, bottom image.View[T]
	if cfg.EdgeModeY != edge.KernelClip {
		top, bottom, err = image.BuildColumnStrips[T](transient, ky.Length(), cfg.EdgeModeY, cfg.Constant)
		if err != nil {
			return err
		}
	}

	cfg.Plan.Run(cfg.Pool, dst.Height(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			verticalPassRowExact(dst, transient, top, bottom, y, ky, cfg.EdgeModeY)
		}
	})
	return nil
}

func horizontalPassRowExact[T simd.Lanes](dst, src image.View[T], y int, kx kernel.Kernel, mode edge.Mode, constant []T) {
	w, cn, r := src.Width(), src.Channels(), kx.Radius
	dstRow := dst.Row(y)

	if mode == edge.KernelClip {
		for x := 0; x < w; x++ {
			for c := 0; c < cn; c++ {
				dstRow[x*cn+c] = f64ToSample[T](kernelClipTapRow(kx, src, y, x, c))
			}
		}
		return
	}

	strip, err := image.BuildRowStrip[T](src, y, kx.Length(), mode, constant)
	if err != nil {
		return // kernel length already validated at Run entry
	}
	taps := kx.Taps()
	if accumulateRowVector(dstRow, strip, cn, r, w, taps, kx.Symmetric) {
		return
	}
	for x := 0; x < w; x++ {
		center := r + x
		for c := 0; c < cn; c++ {
			dstRow[x*cn+c] = f64ToSample[T](accumulateTapsRow(strip, cn, center, c, taps, kx.Symmetric))
		}
	}
}

func accumulateTapsRow[T simd.Lanes](strip []T, cn, center, c int, taps []kernel.Tap, symmetric bool) float64 {
	var acc float64
	if symmetric {
		for _, t := range taps {
			if t.Offset == 0 {
				acc += float64(t.Weight) * sampleToF64(strip[center*cn+c])
			} else {
				left := sampleToF64(strip[(center-t.Offset)*cn+c])
				right := sampleToF64(strip[(center+t.Offset)*cn+c])
				acc += float64(t.Weight) * (left + right)
			}
		}
		return acc
	}
	for _, t := range taps {
		acc += float64(t.Weight) * sampleToF64(strip[(center+t.Offset)*cn+c])
	}
	return acc
}

// kernelClipTapRow renormalizes by the subsum of in-bounds weights instead
// of substituting a border sample, per §4.6's anisotropic KernelClip rule.
func kernelClipTapRow[T simd.Lanes](k kernel.Kernel, src image.View[T], y, x, c int) float64 {
	w, r := src.Width(), k.Radius
	var acc, wsum float64
	for i, coeff := range k.Coeffs {
		sx := x + i - r
		if sx < 0 || sx >= w {
			continue
		}
		acc += float64(coeff) * sampleToF64(src.At(sx, y, c))
		wsum += float64(coeff)
	}
	if wsum == 0 {
		return 0
	}
	return acc / wsum
}

// verticalPassRowExact produces one output row of the vertical pass at a
// time: every tap in the interior region reads a whole contiguous row of
// transient/top/bottom, so the branch-free case (mode != KernelClip) sweeps
// the row through accumulateColumnVector instead of per-pixel scalar reads.
func verticalPassRowExact[T simd.Lanes](dst, transient, top, bottom image.View[T], y int, ky kernel.Kernel, mode edge.Mode) {
	w, cn, r := transient.Width(), transient.Channels(), ky.Radius
	h := transient.Height()
	dstRow := dst.Row(y)

	if mode == edge.KernelClip {
		for x := 0; x < w; x++ {
			for c := 0; c < cn; c++ {
				dstRow[x*cn+c] = f64ToSample[T](kernelClipTapColumn(ky, transient, x, y, c))
			}
		}
		return
	}

	taps := ky.Taps()
	rowAt := func(dy int) []T {
		yy := y + dy
		switch {
		case yy >= 0 && yy < h:
			return transient.Row(yy)
		case yy < 0:
			return top.Row(yy + r)
		default:
			return bottom.Row(yy - h)
		}
	}
	if accumulateColumnVector(dstRow, rowAt, taps, ky.Symmetric) {
		return
	}
	for x := 0; x < w; x++ {
		for c := 0; c < cn; c++ {
			dstRow[x*cn+c] = f64ToSample[T](accumulateTapsColumn(transient, top, bottom, x, y, c, r, taps, ky.Symmetric))
		}
	}
}

func accumulateTapsColumn[T simd.Lanes](transient, top, bottom image.View[T], x, y, c, r int, taps []kernel.Tap, symmetric bool) float64 {
	var acc float64
	if symmetric {
		for _, t := range taps {
			if t.Offset == 0 {
				acc += float64(t.Weight) * sampleToF64(readColumnSample(transient, top, bottom, x, y, c))
			} else {
				left := sampleToF64(readColumnSample(transient, top, bottom, x, y-t.Offset, c))
				right := sampleToF64(readColumnSample(transient, top, bottom, x, y+t.Offset, c))
				acc += float64(t.Weight) * (left + right)
			}
		}
		return acc
	}
	for _, t := range taps {
		acc += float64(t.Weight) * sampleToF64(readColumnSample(transient, top, bottom, x, y+t.Offset, c))
	}
	return acc
}

func readColumnSample[T simd.Lanes](transient, top, bottom image.View[T], x, yy, c int) T {
	h := transient.Height()
	switch {
	case yy >= 0 && yy < h:
		return transient.At(x, yy, c)
	case yy < 0:
		r := top.Height()
		return top.At(x, yy+r, c)
	default:
		return bottom.At(x, yy-h, c)
	}
}

func kernelClipTapColumn[T simd.Lanes](k kernel.Kernel, transient image.View[T], x, y, c int) float64 {
	h, r := transient.Height(), k.Radius
	var acc, wsum float64
	for i, coeff := range k.Coeffs {
		sy := y + i - r
		if sy < 0 || sy >= h {
			continue
		}
		acc += float64(coeff) * sampleToF64(transient.At(x, sy, c))
		wsum += float64(coeff)
	}
	if wsum == 0 {
		return 0
	}
	return acc / wsum
}
