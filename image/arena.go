package image

import (
	"github.com/blurhwy/libblur/edge"
	"github.com/blurhwy/libblur/simd"
)

// BuildRowStrip produces the padded row used by Filter1D's horizontal pass:
// a single strip of (W+kernelLen-1)*CN samples, with the source row copied
// into the interior and the two margins filled by mode (or by constant,
// per-channel, when mode is edge.Constant). kernelLen must be odd.
func BuildRowStrip[T simd.Lanes](src View[T], y, kernelLen int, mode edge.Mode, constant []T) ([]T, error) {
	r, err := radiusOf(kernelLen)
	if err != nil {
		return nil, err
	}
	w, cn := src.Width(), src.Channels()
	stripW := w + 2*r
	strip := make([]T, stripW*cn)
	row := src.Row(y)
	copy(strip[r*cn:(r+w)*cn], row)

	for p := 0; p < r; p++ {
		fillStripSample(strip, p, cn, src, y, p-r, mode, constant)
	}
	for p := r + w; p < stripW; p++ {
		fillStripSample(strip, p, cn, src, y, p-r, mode, constant)
	}
	return strip, nil
}

func fillStripSample[T simd.Lanes](dst []T, p, cn int, src View[T], y, x int, mode edge.Mode, constant []T) {
	if mode == edge.Constant {
		copy(dst[p*cn:(p+1)*cn], constant)
		return
	}
	sx := edge.Index(x, src.Width(), mode)
	for c := 0; c < cn; c++ {
		dst[p*cn+c] = src.At(sx, y, c)
	}
}

// BuildColumnStrips produces the top and bottom padding strips Filter1D's
// vertical pass reads at the top/bottom margins: two owned views of
// r×W×CN, r = kernel radius, filled by mode. When r is 0 both views are a
// single zero-filled row.
func BuildColumnStrips[T simd.Lanes](src View[T], kernelLen int, mode edge.Mode, constant []T) (top, bottom View[T], err error) {
	r, err := radiusOf(kernelLen)
	if err != nil {
		return View[T]{}, View[T]{}, err
	}
	w, cn, h := src.Width(), src.Channels(), src.Height()
	if r == 0 {
		top, err = Alloc[T](w, 1, cn)
		if err != nil {
			return
		}
		bottom, err = Alloc[T](w, 1, cn)
		return top, bottom, err
	}
	top, err = Alloc[T](w, r, cn)
	if err != nil {
		return
	}
	bottom, err = Alloc[T](w, r, cn)
	if err != nil {
		return
	}
	for i := 0; i < r; i++ {
		fillStripRow(top, i, src, i-r, mode, constant)
	}
	for i := 0; i < r; i++ {
		fillStripRow(bottom, i, src, h+i, mode, constant)
	}
	return top, bottom, nil
}

func fillStripRow[T simd.Lanes](dst View[T], dstY int, src View[T], y int, mode edge.Mode, constant []T) {
	w, cn := src.Width(), src.Channels()
	if mode == edge.Constant {
		for x := 0; x < w; x++ {
			for c := 0; c < cn; c++ {
				dst.Set(x, dstY, c, constant[c])
			}
		}
		return
	}
	sy := edge.Index(y, src.Height(), mode)
	for x := 0; x < w; x++ {
		for c := 0; c < cn; c++ {
			dst.Set(x, dstY, c, src.At(x, sy, c))
		}
	}
}

// BuildFullArena produces a whole-image padded copy of size
// (W+kernelLenX-1)×(H+kernelLenY-1)×CN: the source byte-copied into the
// interior, the four L-shaped margins filled by mode. No engine in this
// module calls it; Filter1D's passes use BuildRowStrip and
// BuildColumnStrips.
func BuildFullArena[T simd.Lanes](src View[T], kernelLenX, kernelLenY int, mode edge.Mode, constant []T) (View[T], error) {
	rx, err := radiusOf(kernelLenX)
	if err != nil {
		return View[T]{}, err
	}
	ry, err := radiusOf(kernelLenY)
	if err != nil {
		return View[T]{}, err
	}
	w, h, cn := src.Width(), src.Height(), src.Channels()
	arena, err := Alloc[T](w+2*rx, h+2*ry, cn)
	if err != nil {
		return View[T]{}, err
	}
	for ay := 0; ay < arena.Height(); ay++ {
		y := ay - ry
		for ax := 0; ax < arena.Width(); ax++ {
			x := ax - rx
			switch {
			case x >= 0 && x < w && y >= 0 && y < h:
				for c := 0; c < cn; c++ {
					arena.Set(ax, ay, c, src.At(x, y, c))
				}
			case mode == edge.Constant:
				for c := 0; c < cn; c++ {
					arena.Set(ax, ay, c, constant[c])
				}
			default:
				sx := edge.Index(x, w, mode)
				sy := edge.Index(y, h, mode)
				for c := 0; c < cn; c++ {
					arena.Set(ax, ay, c, src.At(sx, sy, c))
				}
			}
		}
	}
	return arena, nil
}

func radiusOf(kernelLen int) (int, error) {
	if kernelLen < 1 || kernelLen%2 == 0 {
		return 0, errKernelLen(kernelLen)
	}
	return (kernelLen - 1) / 2, nil
}
