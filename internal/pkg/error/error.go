package error

import (
	"context"
	"errors"
)

// IsContextError reports whether err was caused by a canceled or timed-out request.
func IsContextError(err error) bool {
	ctxErrs := []error{context.Canceled, context.DeadlineExceeded}
	for _, ctxErr := range ctxErrs {
		if errors.Is(err, ctxErr) {
			return true
		}
	}

	return false
}
