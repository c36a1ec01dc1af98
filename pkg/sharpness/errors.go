package sharpness

import (
	interrors "go-image-sharpness/internal/errors"
)

// IsInvalidArgument reports whether err was caused by malformed caller
// input (nil/empty image, unsupported kernel size, negative downscale
// limit, or mask dimension mismatch).
func IsInvalidArgument(err error) bool {
	return interrors.IsType(err, interrors.ErrorTypeInvalidArgument)
}
