package libblur

import (
	"github.com/blurhwy/libblur/fastgaussian"
	"github.com/blurhwy/libblur/image"
	"github.com/blurhwy/libblur/simd"
)

// FastGaussianOptions carries the fast_gaussian parameters: a single
// isotropic Radius, an EdgeMode shared by both axes, and a threading
// policy. Radius is capped per sample type (see fastgaussian.RadiusCap);
// KernelClip is rejected.
type FastGaussianOptions struct {
	Radius    int
	EdgeMode  EdgeMode
	Threading ThreadingPolicy
	Pool      *Pool
}

func fastGaussian[T simd.Lanes](img image.View[T], opts FastGaussianOptions) error {
	return fastgaussian.Run(img, fastgaussian.Config[T]{
		Radius:    opts.Radius,
		EdgeModeX: opts.EdgeMode,
		EdgeModeY: opts.EdgeMode,
		Plan:      opts.Threading,
		Pool:      opts.Pool,
	})
}

// FastGaussian applies fast_gaussian in place to 8-bit samples.
func FastGaussian(img image.View[uint8], opts FastGaussianOptions) error {
	return fastGaussian(img, opts)
}

// FastGaussianU16 applies fast_gaussian_u16 in place to 16-bit samples.
func FastGaussianU16(img image.View[uint16], opts FastGaussianOptions) error {
	return fastGaussian(img, opts)
}

// FastGaussianF32 applies fast_gaussian_f32 in place to float32 samples.
func FastGaussianF32(img image.View[float32], opts FastGaussianOptions) error {
	return fastGaussian(img, opts)
}

// FastGaussianF16 applies fast_gaussian_f16 in place to half-precision
// samples.
func FastGaussianF16(img image.View[simd.Float16], opts FastGaussianOptions) error {
	return fastGaussian(img, opts)
}
