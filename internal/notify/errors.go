package notify

import "errors"

var (
	// ErrUnavailable indicates the endpoint could not be reached.
	ErrUnavailable = errors.New("report endpoint unavailable")

	// ErrTimeout indicates the call exceeded the configured timeout.
	ErrTimeout = errors.New("report notification timed out")

	// ErrRejected indicates the endpoint answered with a non-2xx status.
	ErrRejected = errors.New("report notification rejected")
)
