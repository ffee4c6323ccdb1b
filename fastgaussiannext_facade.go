package libblur

import (
	"github.com/blurhwy/libblur/fastgaussiannext"
	"github.com/blurhwy/libblur/image"
	"github.com/blurhwy/libblur/simd"
)

// AnisotropicRadius is a pair of per-axis radii for fast_gaussian_next
// (anisotropic_radius): X applies to the horizontal pass, Y to the
// vertical one. Leave both at zero and set FastGaussianNextOptions.Radius
// instead for the isotropic case.
type AnisotropicRadius struct {
	X, Y int
}

// FastGaussianNextOptions carries the fast_gaussian_next parameters.
// Radius sets an isotropic radius for both axes; AnisotropicRadius, when
// its fields are non-zero, overrides the corresponding axis.
type FastGaussianNextOptions struct {
	Radius            int
	AnisotropicRadius AnisotropicRadius
	EdgeMode          EdgeMode
	Threading         ThreadingPolicy
	Pool              *Pool
}

func fastGaussianNext[T simd.Lanes](img image.View[T], opts FastGaussianNextOptions) error {
	return fastgaussiannext.Run(img, fastgaussiannext.Config[T]{
		Radius:    opts.Radius,
		RadiusX:   opts.AnisotropicRadius.X,
		RadiusY:   opts.AnisotropicRadius.Y,
		EdgeModeX: opts.EdgeMode,
		EdgeModeY: opts.EdgeMode,
		Plan:      opts.Threading,
		Pool:      opts.Pool,
	})
}

// FastGaussianNext applies fast_gaussian_next in place to 8-bit samples.
func FastGaussianNext(img image.View[uint8], opts FastGaussianNextOptions) error {
	return fastGaussianNext(img, opts)
}

// FastGaussianNextU16 applies fast_gaussian_next_u16 in place to 16-bit
// samples.
func FastGaussianNextU16(img image.View[uint16], opts FastGaussianNextOptions) error {
	return fastGaussianNext(img, opts)
}

// FastGaussianNextF32 applies fast_gaussian_next_f32 in place to float32
// samples.
func FastGaussianNextF32(img image.View[float32], opts FastGaussianNextOptions) error {
	return fastGaussianNext(img, opts)
}

// FastGaussianNextF16 applies fast_gaussian_next_f16 in place to half-
// precision samples.
func FastGaussianNextF16(img image.View[simd.Float16], opts FastGaussianNextOptions) error {
	return fastGaussianNext(img, opts)
}
