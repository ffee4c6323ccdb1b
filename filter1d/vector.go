package filter1d

import (
	"github.com/blurhwy/libblur/kernel"
	"github.com/blurhwy/libblur/simd"
)

// tapSource pairs one kernel tap's weight with the contiguous run of
// samples it reads for the row or column currently being produced.
type tapSource[T simd.Floats] struct {
	weight float32
	src    []T
}

// accumulateFlat is the branch-free interior of a separable 1-D sweep:
// dst[i] = sum over sources of weight*src[i], evaluated through
// simd.Vec/Load/FMA/Store, full-width lanes at a time with a masked tail
// for the remainder. Border handling has already been resolved by the
// caller into each source's contiguous run.
func accumulateFlat[T simd.Floats](dst []T, sources []tapSource[T]) {
	n := len(dst)
	// Float16 samples are widened so the running sum is kept in float32.
	if d16, ok := any(dst).([]simd.Float16); ok {
		wide := make([]tapSource[float32], len(sources))
		for i, tp := range sources {
			src := make([]float32, n)
			for j, v := range any(tp.src).([]simd.Float16)[:n] {
				src[j] = v.Float32()
			}
			wide[i] = tapSource[float32]{weight: tp.weight, src: src}
		}
		acc32 := make([]float32, n)
		accumulateFlat(acc32, wide)
		for j := range d16 {
			d16[j] = simd.Float32ToFloat16(acc32[j])
		}
		return
	}
	acc := make([]T, n)
	for _, tp := range sources {
		w := simd.Const[T](tp.weight)
		src := tp.src
		simd.ProcessWithTail[T](n, func(offset int) {
			a := simd.Load(acc[offset:])
			s := simd.Load(src[offset:])
			simd.Store(simd.FMA(w, s, a), acc[offset:])
		}, func(offset, count int) {
			mask := simd.TailMask[T](count)
			a := simd.MaskLoad(mask, acc[offset:])
			s := simd.MaskLoad(mask, src[offset:])
			simd.MaskStore(mask, simd.FMA(w, s, a), acc[offset:])
		})
	}
	copy(dst, acc)
}

// accumulateRowVector runs the horizontal pass's interior tap sweep
// through accumulateFlat for the float sample types simd.FMA supports. It
// reports false for integer sample types (u8/u16), which the caller falls
// back to a scalar widen/narrow sweep for.
//
// The whole interleaved row of w*cn samples is swept at once: since a tap
// at pixel offset t shifts every channel by the same t*cn samples, the
// per-pixel, per-channel loop collapses into one flat vector pass per tap.
func accumulateRowVector[T simd.Lanes](dstRow, strip []T, cn, r, w int, taps []kernel.Tap, symmetric bool) bool {
	n := w * cn
	base := r * cn
	switch d := any(dstRow).(type) {
	case []float32:
		accumulateRowVectorT(d, any(strip).([]float32), cn, base, n, taps, symmetric)
	case []float64:
		accumulateRowVectorT(d, any(strip).([]float64), cn, base, n, taps, symmetric)
	case []simd.Float16:
		accumulateRowVectorT(d, any(strip).([]simd.Float16), cn, base, n, taps, symmetric)
	default:
		return false
	}
	return true
}

func accumulateRowVectorT[T simd.Floats](dstRow, strip []T, cn, base, n int, taps []kernel.Tap, symmetric bool) {
	sources := make([]tapSource[T], 0, 2*len(taps))
	for _, t := range taps {
		if symmetric && t.Offset != 0 {
			shift := t.Offset * cn
			sources = append(sources,
				tapSource[T]{weight: t.Weight, src: strip[base-shift : base-shift+n]},
				tapSource[T]{weight: t.Weight, src: strip[base+shift : base+shift+n]},
			)
			continue
		}
		shift := t.Offset * cn
		sources = append(sources, tapSource[T]{weight: t.Weight, src: strip[base+shift : base+shift+n]})
	}
	accumulateFlat(dstRow, sources)
}

// accumulateColumnVector is accumulateRowVector's counterpart for the
// vertical pass. rowAt(dy) must return the contiguous, w*cn-wide row dy
// samples above or below the row currently being produced, with any
// top/bottom border substitution already resolved by the caller.
func accumulateColumnVector[T simd.Lanes](dstRow []T, rowAt func(dy int) []T, taps []kernel.Tap, symmetric bool) bool {
	switch d := any(dstRow).(type) {
	case []float32:
		accumulateColumnVectorT(d, func(dy int) []float32 { return any(rowAt(dy)).([]float32) }, taps, symmetric)
	case []float64:
		accumulateColumnVectorT(d, func(dy int) []float64 { return any(rowAt(dy)).([]float64) }, taps, symmetric)
	case []simd.Float16:
		accumulateColumnVectorT(d, func(dy int) []simd.Float16 { return any(rowAt(dy)).([]simd.Float16) }, taps, symmetric)
	default:
		return false
	}
	return true
}

func accumulateColumnVectorT[T simd.Floats](dstRow []T, rowAt func(dy int) []T, taps []kernel.Tap, symmetric bool) {
	sources := make([]tapSource[T], 0, 2*len(taps))
	for _, t := range taps {
		if symmetric && t.Offset != 0 {
			sources = append(sources,
				tapSource[T]{weight: t.Weight, src: rowAt(-t.Offset)},
				tapSource[T]{weight: t.Weight, src: rowAt(t.Offset)},
			)
			continue
		}
		sources = append(sources, tapSource[T]{weight: t.Weight, src: rowAt(t.Offset)})
	}
	accumulateFlat(dstRow, sources)
}
