package filter1d

import (
	"math"

	"github.com/blurhwy/libblur/simd"
)

// sampleToF64 widens a sample of any element type to a float64 accumulator
// value, following the type-switch-via-any() pattern used throughout
// simd/ops_base.go for generic numeric dispatch.
func sampleToF64[T simd.Lanes](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case simd.Float16:
		return float64(x.Float32())
	default:
		return 0
	}
}

// f64ToSample narrows an accumulator value back to T, saturating to the
// element type's native range for integer kinds; float kinds pass through
// unclamped (NaN/Inf propagate per §7).
func f64ToSample[T simd.Lanes](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	case uint8:
		return any(saturateU8(v)).(T)
	case uint16:
		return any(saturateU16(v)).(T)
	case simd.Float16:
		return any(simd.Float32ToFloat16(float32(v))).(T)
	default:
		return zero
	}
}

func saturateU8(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

func saturateU16(v float64) uint16 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 65535 {
		return 65535
	}
	return uint16(r)
}

// isFixedPointSample reports whether T is one of the two element types the
// fixed-point accumulator path supports (§4.4: "the approximate u8 and u16
// paths").
func isFixedPointSample[T simd.Lanes]() bool {
	var zero T
	switch any(zero).(type) {
	case uint8, uint16:
		return true
	default:
		return false
	}
}

func isU8Sample[T simd.Lanes]() bool {
	var zero T
	_, ok := any(zero).(uint8)
	return ok
}

// sampleToInt64 widens an integer sample for the fixed-point accumulator.
func sampleToInt64[T simd.Lanes](v T) int64 {
	switch x := any(v).(type) {
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	default:
		return 0
	}
}

func int64ToSample[T simd.Lanes](v int64) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return any(uint8(v)).(T)
	case uint16:
		if v < 0 {
			v = 0
		}
		if v > 65535 {
			v = 65535
		}
		return any(uint16(v)).(T)
	default:
		return zero
	}
}
