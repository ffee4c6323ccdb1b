package image

import (
	"fmt"

	"github.com/blurhwy/libblur/errs"
)

func errDims(format string, args ...any) error {
	return fmt.Errorf("image: %w: %s", errs.ErrInvalidDimension, fmt.Sprintf(format, args...))
}

func errKernelLen(kernelLen int) error {
	return fmt.Errorf("image: %w: kernel length %d must be odd and positive", errs.ErrKernelSizeMismatch, kernelLen)
}
