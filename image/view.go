// Package image implements the strided multi-channel image view (C1) and
// the border arena builder (C3).
//
// View generalizes go-highway's hwy/contrib/image Image[T] — a
// single-channel 2-D array with a padded row stride — to the W×H×CN
// interleaved-sample layout the blur engines operate on: CN ∈ {1,3,4}
// channels per pixel, row stride S ≥ W*CN given in samples, not bytes.
package image

import "github.com/blurhwy/libblur/simd"

// View is a borrowed or owned strided image: width W, height H, channel
// count CN, row stride S (samples, S ≥ W*CN), laid out row-major with
// channels interleaved per pixel.
type View[T simd.Lanes] struct {
	data   []T
	width  int
	height int
	cn     int
	stride int
}

// Alloc allocates a new owned View with exact stride W*CN.
func Alloc[T simd.Lanes](width, height, cn int) (View[T], error) {
	if err := validateDims(width, height, cn); err != nil {
		return View[T]{}, err
	}
	stride := width * cn
	return View[T]{
		data:   make([]T, stride*height),
		width:  width,
		height: height,
		cn:     cn,
		stride: stride,
	}, nil
}

// WithStride wraps a borrowed buffer with a caller-chosen stride, for
// embedding a blur target into a larger surface. stride must be ≥ W*CN and
// data must hold at least stride*(H-1) + W*CN samples.
func WithStride[T simd.Lanes](data []T, width, height, cn, stride int) (View[T], error) {
	if err := validateDims(width, height, cn); err != nil {
		return View[T]{}, err
	}
	if stride < width*cn {
		return View[T]{}, errDims("stride %d is less than width*channels %d", stride, width*cn)
	}
	need := stride*(height-1) + width*cn
	if len(data) < need {
		return View[T]{}, errDims("buffer length %d is less than required %d", len(data), need)
	}
	return View[T]{data: data, width: width, height: height, cn: cn, stride: stride}, nil
}

func validateDims(width, height, cn int) error {
	if width <= 0 || height <= 0 {
		return errDims("width %d and height %d must be positive", width, height)
	}
	if cn != 1 && cn != 3 && cn != 4 {
		return errDims("channel count %d must be one of {1,3,4}", cn)
	}
	return nil
}

// Width returns the image width in pixels.
func (v View[T]) Width() int { return v.width }

// Height returns the image height in pixels.
func (v View[T]) Height() int { return v.height }

// Channels returns the per-pixel channel count.
func (v View[T]) Channels() int { return v.cn }

// Stride returns the row stride in samples.
func (v View[T]) Stride() int { return v.stride }

// CheckedLayout fails if the buffer is shorter than S*(H-1)+W*CN, if W or H
// is zero, or if CN is not one of {1,3,4}.
func (v View[T]) CheckedLayout() error {
	if err := validateDims(v.width, v.height, v.cn); err != nil {
		return err
	}
	need := v.stride*(v.height-1) + v.width*v.cn
	if len(v.data) < need {
		return errDims("buffer length %d is less than required %d", len(v.data), need)
	}
	return nil
}

// Row returns the sample slice for row y, width*cn samples wide (padding
// beyond width*cn, if any, is not included).
func (v View[T]) Row(y int) []T {
	start := y * v.stride
	return v.data[start : start+v.width*v.cn]
}

// At returns channel c of the pixel at (x, y).
func (v View[T]) At(x, y, c int) T {
	return v.data[y*v.stride+x*v.cn+c]
}

// Set writes channel c of the pixel at (x, y).
func (v View[T]) Set(x, y, c int, val T) {
	v.data[y*v.stride+x*v.cn+c] = val
}

// SameLayout reports whether a and b agree on width, height, and channel
// count (element type equality is enforced by both sharing type parameter T
// at the call site).
func SameLayout[T simd.Lanes](a, b View[T]) bool {
	return a.width == b.width && a.height == b.height && a.cn == b.cn
}
