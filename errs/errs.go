// Package errs defines the sentinel errors returned across the blur
// pipeline's public surface. Every engine validates its preconditions once,
// at call entry, and wraps one of these sentinels with fmt.Errorf to add
// context; callers compare with errors.Is.
package errs

import "errors"

var (
	// ErrLayoutMismatch means the source and destination views disagree on
	// width, height, channel count, or element type.
	ErrLayoutMismatch = errors.New("layout mismatch")

	// ErrInvalidDimension means width is 0, height is 0, or the channel
	// count is not one of {1, 3, 4}.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrKernelSizeMismatch means a kernel is empty or has even length.
	ErrKernelSizeMismatch = errors.New("kernel size mismatch")

	// ErrInvalidArgument covers KernelClip supplied to a non-accurate
	// engine, and a FastGaussian/FastGaussianNext radius exceeding its
	// type-specific cap.
	ErrInvalidArgument = errors.New("invalid argument")
)
