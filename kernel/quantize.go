package kernel

import (
	"fmt"

	"github.com/blurhwy/libblur/errs"
)

// QKernel is a fixed-point coefficient array: Coeffs are pre-scaled
// integers, Shift is the arithmetic right shift applied after accumulation
// (15 for Q15, 7 for Q0.7), and Round is the rounding bias (1<<(Shift-1))
// added before the shift.
type QKernel struct {
	Coeffs []int32
	Radius int
	Shift  uint
	Round  int32
}

// Length returns the full kernel length 2*Radius+1.
func (q QKernel) Length() int { return 2*q.Radius + 1 }

func round(v float64) int32 {
	if v >= 0 {
		return int32(v + 0.5)
	}
	return -int32(-v + 0.5)
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// QuantizeQ15 pre-multiplies each coefficient by 2^15 and rounds to a
// signed integer, per §4.4's fixed-point derivation.
func QuantizeQ15(k Kernel) QKernel {
	coeffs := make([]int32, len(k.Coeffs))
	for i, c := range k.Coeffs {
		coeffs[i] = round(float64(c) * (1 << 15))
	}
	return QKernel{Coeffs: coeffs, Radius: k.Radius, Shift: 15, Round: 1 << 14}
}

// QuantizeQ0_7 pre-scales each coefficient by 2^7 into a signed 8-bit
// range, then adjusts the center coefficient so the quantized sum equals
// exactly 128. Restricted to 3-tap kernels per §4.4/§3.
func QuantizeQ0_7(k Kernel) (QKernel, error) {
	if k.Length() != 3 {
		return QKernel{}, fmt.Errorf("kernel: %w: Q0.7 quantization requires a 3-tap kernel, got length %d", errs.ErrKernelSizeMismatch, k.Length())
	}
	coeffs := make([]int32, 3)
	var sum int32
	for i, c := range k.Coeffs {
		coeffs[i] = clampInt32(round(float64(c)*(1<<7)), -128, 127)
		sum += coeffs[i]
	}
	coeffs[1] += 128 - sum
	return QKernel{Coeffs: coeffs, Radius: 1, Shift: 7, Round: 1 << 6}, nil
}

// ApplyShift rounds and right-shifts a fixed-point accumulator back to
// integer sample space: (acc + Round) >> Shift.
func (q QKernel) ApplyShift(acc int64) int64 {
	return (acc + int64(q.Round)) >> q.Shift
}
