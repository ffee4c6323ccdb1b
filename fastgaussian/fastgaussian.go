// Package fastgaussian implements the two-accumulator rolling box filter
// (C7): an O(1)-per-pixel approximation of a Gaussian obtained by three
// passes of a box filter of radius r, collapsed into one running
// sum/difference pass per axis (§4.7).
package fastgaussian

import (
	"fmt"

	"github.com/blurhwy/libblur/edge"
	"github.com/blurhwy/libblur/errs"
	"github.com/blurhwy/libblur/fastgaussian/ring"
	"github.com/blurhwy/libblur/image"
	"github.com/blurhwy/libblur/simd"
	"github.com/blurhwy/libblur/threadpool"
)

// Config holds the per-call parameters for Run.
type Config[T simd.Lanes] struct {
	Radius               int
	EdgeModeX, EdgeModeY edge.Mode
	Plan                 threadpool.Plan
	Pool                 *threadpool.Pool
}

func validate[T simd.Lanes](cfg Config[T]) error {
	if cfg.Radius < 1 {
		return fmt.Errorf("fastgaussian: %w: radius must be >= 1", errs.ErrInvalidArgument)
	}
	if cap := RadiusCap[T](); cfg.Radius > cap {
		return fmt.Errorf("fastgaussian: %w: radius %d exceeds the type-specific cap of %d", errs.ErrInvalidArgument, cfg.Radius, cap)
	}
	if cfg.EdgeModeX == edge.KernelClip || cfg.EdgeModeY == edge.KernelClip {
		return fmt.Errorf("fastgaussian: %w: KernelClip is supported only by the exact Filter1D engine", errs.ErrInvalidArgument)
	}
	return nil
}

// Run blurs img in place: a horizontal pass over every row, then a
// vertical pass over every column, each driven by runAxis.
func Run[T simd.Lanes](img image.View[T], cfg Config[T]) error {
	if err := validate(cfg); err != nil {
		return err
	}
	cfg.Plan.Run(cfg.Pool, img.Height(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			horizontalPassRow(img, y, cfg.Radius, cfg.EdgeModeX)
		}
	})
	cfg.Plan.Run(cfg.Pool, img.Width(), func(x0, x1 int) {
		for x := x0; x < x1; x++ {
			verticalPassColumn(img, x, cfg.Radius, cfg.EdgeModeY)
		}
	})
	return nil
}

func horizontalPassRow[T simd.Lanes](img image.View[T], y, radius int, mode edge.Mode) {
	w, cn := img.Width(), img.Channels()
	row := img.Row(y)
	scratch := make([]T, w*cn)
	copy(scratch, row)
	get := func(i int) []T {
		idx := edge.Index(i, w, mode)
		return scratch[idx*cn : (idx+1)*cn]
	}
	set := func(i int, vals []T) {
		copy(row[i*cn:(i+1)*cn], vals)
	}
	runAxis[T](get, set, w, cn, radius)
}

func verticalPassColumn[T simd.Lanes](img image.View[T], x, radius int, mode edge.Mode) {
	h, cn := img.Height(), img.Channels()
	scratch := make([]T, h*cn)
	for y := 0; y < h; y++ {
		for c := 0; c < cn; c++ {
			scratch[y*cn+c] = img.At(x, y, c)
		}
	}
	get := func(i int) []T {
		idx := edge.Index(i, h, mode)
		return scratch[idx*cn : (idx+1)*cn]
	}
	set := func(i int, vals []T) {
		for c := 0; c < cn; c++ {
			img.Set(x, i, c, vals[c])
		}
	}
	runAxis[T](get, set, h, cn, radius)
}

// runAxis drives §4.7's two-accumulator algorithm for one axis of length
// n with the given radius: get(i) returns the cn border-clipped source
// samples at index i, set(i, vals) writes cn output samples at index i.
func runAxis[T simd.Lanes](get func(i int) []T, set func(i int, vals []T), n, cn, radius int) {
	buf := ring.New[float64](cn)
	sum := make([]float64, cn)
	diff := make([]float64, cn)
	out := make([]T, cn)

	if isIntegerSample[T]() {
		bias := float64((radius * radius) >> 1)
		for c := range sum {
			sum[c] = bias
		}
	}
	weight := 1.0 / float64(radius*radius)

	for x := -2 * radius; x < n; x++ {
		if x >= 0 {
			for c := 0; c < cn; c++ {
				out[c] = f64ToSample[T](sum[c] * weight)
			}
			set(x, out)
		}

		if x >= 0 {
			for c := 0; c < cn; c++ {
				diff[c] += buf.At(x-radius, c) - 2*buf.At(x, c)
			}
		} else if x+radius >= 0 {
			for c := 0; c < cn; c++ {
				diff[c] -= 2 * buf.At(x, c)
			}
		}

		xr := x + radius
		src := get(xr)
		for c := 0; c < cn; c++ {
			px := sampleToF64(src[c])
			buf.SetChannel(xr, c, px)
			diff[c] += px
			sum[c] += diff[c]
		}
	}
}
