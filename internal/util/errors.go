// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input provided")
	ErrInvalidAmount    = errors.New("amount is negative or not an exact decimal")
	ErrUserNotFound     = errors.New("user not found")
	ErrSelfPayment      = errors.New("payment source and destination must differ")
	ErrShareSumMismatch = errors.New("participant shares do not sum to the expense total")
)

// IsError reports whether err matches the target sentinel.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
