package libblur

import (
	"github.com/blurhwy/libblur/edge"
	"github.com/blurhwy/libblur/filter1d"
	"github.com/blurhwy/libblur/image"
	"github.com/blurhwy/libblur/kernel"
	"github.com/blurhwy/libblur/simd"
)

// GaussianBlurOptions carries the shared gaussian_blur parameters: exactly
// one of KernelSize/Sigma may be left at its zero value (kernel.Gaussian1D
// derives the other); EdgeMode applies to both axes; ConvolutionMode
// selects Exact or FixedPoint (FixedPoint is u8/u16 only).
type GaussianBlurOptions struct {
	KernelSize      int
	Sigma           float64
	EdgeMode        EdgeMode
	Constant        float64
	ConvolutionMode ConvolutionMode
	Threading       ThreadingPolicy
	Pool            *Pool
}

func gaussianBlur[T simd.Lanes](src, dst image.View[T], opts GaussianBlurOptions, toSample func(float64) T) error {
	pair, err := gaussianPair(opts.KernelSize, opts.Sigma)
	if err != nil {
		return err
	}
	var constant []T
	if opts.EdgeMode == edge.Constant {
		constant = make([]T, src.Channels())
		for c := range constant {
			constant[c] = toSample(opts.Constant)
		}
	}
	cfg := filter1d.Config[T]{
		Accum:     opts.ConvolutionMode,
		EdgeModeX: opts.EdgeMode,
		EdgeModeY: opts.EdgeMode,
		Constant:  constant,
		Plan:      opts.Threading,
		Pool:      opts.Pool,
	}
	return filter1d.Run(src, dst, pair.KX, pair.KY, cfg)
}

// GaussianBlur applies gaussian_blur (§6) to 8-bit samples.
func GaussianBlur(src, dst image.View[uint8], opts GaussianBlurOptions) error {
	return gaussianBlur(src, dst, opts, func(v float64) uint8 {
		return clampSample[uint8](v, 0, 255)
	})
}

// GaussianBlurU16 applies gaussian_blur_u16 to 16-bit samples.
func GaussianBlurU16(src, dst image.View[uint16], opts GaussianBlurOptions) error {
	return gaussianBlur(src, dst, opts, func(v float64) uint16 {
		return clampSample[uint16](v, 0, 65535)
	})
}

// GaussianBlurF32 applies gaussian_blur_f32 to float32 samples.
// ConvolutionMode is always treated as Exact: FixedPoint is u8/u16 only.
func GaussianBlurF32(src, dst image.View[float32], opts GaussianBlurOptions) error {
	opts.ConvolutionMode = kernel.Exact
	return gaussianBlur(src, dst, opts, func(v float64) float32 { return float32(v) })
}

// GaussianBlurF16 applies gaussian_blur_f16 to half-precision samples.
// ConvolutionMode is always treated as Exact: FixedPoint is u8/u16 only.
func GaussianBlurF16(src, dst image.View[simd.Float16], opts GaussianBlurOptions) error {
	opts.ConvolutionMode = kernel.Exact
	return gaussianBlur(src, dst, opts, func(v float64) simd.Float16 {
		return simd.Float32ToFloat16(float32(v))
	})
}

func clampSample[T ~uint8 | ~uint16](v float64, lo, hi float64) T {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return T(v)
}
