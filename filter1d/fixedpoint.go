package filter1d

import (
	"github.com/blurhwy/libblur/edge"
	"github.com/blurhwy/libblur/image"
	"github.com/blurhwy/libblur/kernel"
	"github.com/blurhwy/libblur/simd"
)

// qTap is a quantized-kernel tap, mirroring kernel.Tap but with an integer
// weight, for the fixed-point accumulator.
type qTap struct {
	Weight int32
	Offset int
}

func buildQTaps(q kernel.QKernel, symmetric bool) []qTap {
	r := q.Radius
	if symmetric {
		taps := make([]qTap, 0, r+1)
		for off := 0; off <= r; off++ {
			taps = append(taps, qTap{Weight: q.Coeffs[r+off], Offset: off})
		}
		return taps
	}
	taps := make([]qTap, len(q.Coeffs))
	for i, c := range q.Coeffs {
		taps[i] = qTap{Weight: c, Offset: i - r}
	}
	return taps
}

// quantizeForSample picks Q0.7 for 3-tap u8 kernels and Q15 otherwise, per
// §4.4's "denser Q0.7 representation" rule.
func quantizeForSample[T simd.Lanes](k kernel.Kernel) (kernel.QKernel, error) {
	if isU8Sample[T]() && k.Length() == 3 {
		return kernel.QuantizeQ0_7(k)
	}
	return kernel.QuantizeQ15(k), nil
}

// runFixedPoint implements the integer accumulator path: same two-pass
// shape as runExact, but the accumulator keeps the raw scaled integer
// product and applies the rounding bias + shift once per output pixel
// (§4.4, §7).
func runFixedPoint[T simd.Lanes](src, dst image.View[T], kx, ky kernel.Kernel, cfg Config[T]) error {
	qkx, err := quantizeForSample[T](kx)
	if err != nil {
		return err
	}
	qky, err := quantizeForSample[T](ky)
	if err != nil {
		return err
	}
	tapsX := buildQTaps(qkx, kx.Symmetric)
	tapsY := buildQTaps(qky, ky.Symmetric)

	transient, err := image.Alloc[T](src.Width(), src.Height(), src.Channels())
	if err != nil {
		return err
	}

	cfg.Plan.Run(cfg.Pool, src.Height(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			horizontalPassRowFixed(transient, src, y, qkx, tapsX, kx.Symmetric, cfg.EdgeModeX, cfg.Constant)
		}
	})

	top, bottom, err := image.BuildColumnStrips[T](transient, qky.Length(), cfg.EdgeModeY, cfg.Constant)
	if err != nil {
		return err
	}

	cfg.Plan.Run(cfg.Pool, dst.Width(), func(x0, x1 int) {
		verticalPassColumnsFixed(dst, transient, top, bottom, x0, x1, qky, tapsY, ky.Symmetric)
	})
	return nil
}

func horizontalPassRowFixed[T simd.Lanes](dst, src image.View[T], y int, qk kernel.QKernel, taps []qTap, symmetric bool, mode edge.Mode, constant []T) {
	w, cn, r := src.Width(), src.Channels(), qk.Radius
	strip, err := image.BuildRowStrip[T](src, y, qk.Length(), mode, constant)
	if err != nil {
		return // kernel length already validated at Run entry
	}
	dstRow := dst.Row(y)
	for x := 0; x < w; x++ {
		center := r + x
		for c := 0; c < cn; c++ {
			var acc int64
			if symmetric {
				for _, t := range taps {
					if t.Offset == 0 {
						acc += int64(t.Weight) * sampleToInt64(strip[center*cn+c])
					} else {
						left := sampleToInt64(strip[(center-t.Offset)*cn+c])
						right := sampleToInt64(strip[(center+t.Offset)*cn+c])
						acc += int64(t.Weight) * (left + right)
					}
				}
			} else {
				for _, t := range taps {
					acc += int64(t.Weight) * sampleToInt64(strip[(center+t.Offset)*cn+c])
				}
			}
			dstRow[x*cn+c] = int64ToSample[T](qk.ApplyShift(acc))
		}
	}
}

func verticalPassColumnsFixed[T simd.Lanes](dst, transient, top, bottom image.View[T], x0, x1 int, qk kernel.QKernel, taps []qTap, symmetric bool) {
	h, cn := transient.Height(), transient.Channels()
	for x := x0; x < x1; x++ {
		for y := 0; y < h; y++ {
			for c := 0; c < cn; c++ {
				var acc int64
				if symmetric {
					for _, t := range taps {
						if t.Offset == 0 {
							acc += int64(t.Weight) * sampleToInt64(readColumnSample(transient, top, bottom, x, y, c))
						} else {
							left := sampleToInt64(readColumnSample(transient, top, bottom, x, y-t.Offset, c))
							right := sampleToInt64(readColumnSample(transient, top, bottom, x, y+t.Offset, c))
							acc += int64(t.Weight) * (left + right)
						}
					}
				} else {
					for _, t := range taps {
						acc += int64(t.Weight) * sampleToInt64(readColumnSample(transient, top, bottom, x, y+t.Offset, c))
					}
				}
				dst.Set(x, y, c, int64ToSample[T](qk.ApplyShift(acc)))
			}
		}
	}
}
