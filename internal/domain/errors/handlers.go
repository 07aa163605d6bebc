package errors

import "dnotes/internal/errors"

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsRetryable reports whether the operation that produced err may be retried unchanged.
func IsRetryable(err error) bool {
	return err != nil && KindOf(err).Retryable()
}
