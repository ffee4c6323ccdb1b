// Package kernel builds and scans the 1-D coefficient arrays that drive
// Filter1D's horizontal and vertical passes (§4.4), grounded on the
// Gaussian-kernel derivation in
// other_examples/4944eac0_gogpu-gg__internal-filter-kernel.go.go,
// generalized to the spec's (length, sigma) duality, symmetry scanning,
// and fixed-point quantization.
package kernel

import (
	"fmt"
	"math"

	"github.com/blurhwy/libblur/errs"
)

// AccumKind selects the accumulator strategy Filter1D uses for a pass:
// Exact keeps an f32 (or wider) running sum, FixedPoint keeps a scaled
// integer one (Q15, or Q0.7 for 3-tap u8 kernels).
type AccumKind int

const (
	Exact AccumKind = iota
	FixedPoint
)

// Tap is one term of a kernel's compact iteration table: weight applies to
// the pixel Offset samples from the output position (offset 0 is center).
// Symmetric kernels fold the two taps at ±offset into a single entry whose
// inner loop sums source[x-offset]+source[x+offset] before multiplying.
type Tap struct {
	Weight float32
	Offset int // 0..Radius when Symmetric (±Offset folded); -Radius..Radius otherwise
}

// Kernel is an odd-length, normalized 1-D coefficient array together with
// its scanned symmetry and compact tap table.
type Kernel struct {
	Coeffs    []float32
	Radius    int
	Symmetric bool
	taps      []Tap
}

// symTolerance is the element-type-independent tolerance the scanner uses
// to detect k[i] == k[L-1-i]; kernels are always built in float32, so a
// tolerance below float32 epsilon would reject kernels the construction
// itself produces via floating rounding.
const symTolerance = 1e-5

func errKernelLen(length int) error {
	return fmt.Errorf("kernel: %w: length %d must be odd and positive", errs.ErrKernelSizeMismatch, length)
}

func oddCeil(x float64) int {
	n := int(math.Ceil(x))
	if n%2 == 0 {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Gaussian1D derives a normalized Gaussian kernel per §4.4: k[i] =
// exp(-((i-R)^2)/(2*sigma^2)), normalized so the coefficients sum to 1.
// length == 0 derives a length from sigma (length ≈ 6*sigma+1, rounded up
// to the nearest odd integer); sigma <= 0 derives sigma = length/6. At
// least one of the two must be supplied positive.
func Gaussian1D(length int, sigma float64) (Kernel, error) {
	if length == 0 && sigma <= 0 {
		return Kernel{}, fmt.Errorf("kernel: %w: Gaussian1D needs a positive length or sigma", errs.ErrInvalidArgument)
	}
	if length == 0 {
		length = oddCeil(6*sigma + 1)
	}
	if length < 1 || length%2 == 0 {
		return Kernel{}, errKernelLen(length)
	}
	if sigma <= 0 {
		sigma = float64(length) / 6
	}

	r := (length - 1) / 2
	raw := make([]float64, length)
	var sum float64
	for i := 0; i < length; i++ {
		d := float64(i - r)
		v := math.Exp(-(d * d) / (2 * sigma * sigma))
		raw[i] = v
		sum += v
	}
	coeffs := make([]float32, length)
	for i, v := range raw {
		coeffs[i] = float32(v / sum)
	}
	return Scan(coeffs)
}

// Box1D builds a uniform box kernel of the given radius: length 2*radius+1,
// every coefficient 1/length. Unused by the accurate path internally, but
// exported as a convenience constructor per §4.
func Box1D(radius int) Kernel {
	if radius < 0 {
		radius = 0
	}
	length := 2*radius + 1
	w := float32(1) / float32(length)
	coeffs := make([]float32, length)
	for i := range coeffs {
		coeffs[i] = w
	}
	k, _ := Scan(coeffs)
	return k
}

// Scan builds a Kernel from raw coefficients, detecting symmetry
// (k[i] == k[L-1-i] within tolerance) and producing the compact tap table
// engines iterate over.
func Scan(coeffs []float32) (Kernel, error) {
	length := len(coeffs)
	if length < 1 || length%2 == 0 {
		return Kernel{}, errKernelLen(length)
	}
	r := (length - 1) / 2
	symmetric := true
	for i := 0; i < length/2; i++ {
		if diff := coeffs[i] - coeffs[length-1-i]; diff > symTolerance || diff < -symTolerance {
			symmetric = false
			break
		}
	}

	k := Kernel{Coeffs: coeffs, Radius: r, Symmetric: symmetric}
	if symmetric {
		taps := make([]Tap, 0, r+1)
		for off := 0; off <= r; off++ {
			taps = append(taps, Tap{Weight: coeffs[r+off], Offset: off})
		}
		k.taps = taps
	} else {
		taps := make([]Tap, length)
		for i := 0; i < length; i++ {
			taps[i] = Tap{Weight: coeffs[i], Offset: i - r}
		}
		k.taps = taps
	}
	return k, nil
}

// Length returns the full kernel length 2*Radius+1.
func (k Kernel) Length() int { return 2*k.Radius + 1 }

// Taps returns the compact iteration table: for a symmetric kernel, one
// entry per offset in [0, Radius] (the caller sums source[x-offset] +
// source[x+offset] before multiplying by Weight, with offset 0 read once);
// for an asymmetric kernel, one entry per coefficient with signed offsets
// in [-Radius, Radius].
func (k Kernel) Taps() []Tap { return k.taps }
