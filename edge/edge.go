// Package edge implements the border policy (C2): mapping an out-of-range
// 1-D coordinate back into range, or flagging that the caller-supplied
// constant scalar should be used instead.
//
// Adapted from go-highway's hwy/contrib/image Mirror/Clamp/Wrap coordinate
// helpers, generalized from the two modes that package exposed (it called
// its duplicate-edge reflection "Mirror") into the full six-mode policy
// Filter1D, FastGaussian, and FastGaussianNext all share.
package edge

// Mode selects how an out-of-range index is resolved.
type Mode int

const (
	// Clamp saturates to the nearest in-range index.
	Clamp Mode = iota

	// Reflect mirrors with the edge index duplicated: …cba|abc…cba|abc…
	Reflect

	// Reflect101 mirrors without duplicating the edge index: …dcb|abc…cba|bcd…
	Reflect101

	// Wrap takes the index modulo the axis length.
	Wrap

	// Constant substitutes a caller-supplied scalar instead of indexing.
	// Index is never called for this mode; callers check for it directly.
	Constant

	// KernelClip is not an index-producing mode. It is a flag consumed by
	// the accurate Filter1D engine, which renormalizes the kernel instead
	// of substituting a sample. The FixedPoint accumulator, the complex
	// pass, FastGaussian and FastGaussianNext each reject it when validating.
	KernelClip
)

// Index maps i into [0, size) according to mode. size must be > 0.
// Index must not be called with mode == Constant or mode == KernelClip;
// those are handled by the caller before reaching here.
func Index(i, size int, mode Mode) int {
	if i >= 0 && i < size {
		return i
	}
	switch mode {
	case Clamp:
		return clamp(i, size)
	case Reflect:
		return reflect(i, size)
	case Reflect101:
		return reflect101(i, size)
	case Wrap:
		return wrap(i, size)
	default:
		return clamp(i, size)
	}
}

func clamp(i, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}

// reflect mirrors with the edge pixel duplicated: index -1 maps back to 0,
// -2 to 1, and so on; size maps to size-1, size+1 to size-2.
func reflect(i, size int) int {
	if size <= 1 {
		return 0
	}
	if i < 0 {
		i = -i - 1
	}
	if i >= size {
		period := 2 * size
		i %= period
		if i >= size {
			i = period - i - 1
		}
	}
	return i
}

// reflect101 mirrors without duplicating the edge pixel: index -1 maps to 1,
// -2 to 2, size maps to size-2, size+1 to size-3. Defined via periodic
// reduction modulo 2*(size-1) and an absolute-value fold, so it is valid for
// any i, however far outside [0, size).
func reflect101(i, size int) int {
	if size <= 1 {
		return 0
	}
	period := 2 * (size - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= size {
		i = period - i
	}
	return i
}

// wrap takes the Euclidean remainder of i modulo size.
func wrap(i, size int) int {
	if size <= 0 {
		return 0
	}
	i %= size
	if i < 0 {
		i += size
	}
	return i
}
