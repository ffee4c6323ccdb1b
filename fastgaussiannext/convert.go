package fastgaussiannext

import (
	"math"

	"github.com/blurhwy/libblur/simd"
)

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

// RadiusCap returns the type-specific radius ceiling the engine enforces
// (§4.8): u8:280, u16:152.
func RadiusCap[T simd.Lanes]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 280
	case uint16:
		return 152
	default:
		return 152
	}
}
