package profileapi

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAuthToken means no usable token was supplied: it was empty
	// or an expired JWT. No request is sent.
	ErrMissingAuthToken = errors.New("missing or expired auth token")

	// ErrUnauthorized means the service rejected the token (401/403).
	ErrUnauthorized = errors.New("not authorized by profile service")

	// ErrProfileNotFound means the learner has no stored profile (404).
	ErrProfileNotFound = errors.New("learning profile not found")

	// ErrSubmissionInFlight means Store was called while another Store on
	// the same client had not returned.
	ErrSubmissionInFlight = errors.New("profile submission already in flight")
)

// NetworkError indicates the service was unreachable or failed (5xx).
// StatusCode is zero for transport failures.
type NetworkError struct {
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("profile service error (HTTP %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("profile service unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError indicates the profile was rejected, either locally before
// sending or by the service (400/422). Detail is the human-readable reason.
type ValidationError struct {
	Detail string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("profile rejected: %s", e.Detail)
	}
	return fmt.Sprintf("profile rejected: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsRetryable reports whether the learner may try the submission again
// after fixing input or waiting. Auth failures are not retryable; the
// learner must sign in again.
func IsRetryable(err error) bool {
	var netErr *NetworkError
	var valErr *ValidationError
	return errors.As(err, &netErr) || errors.As(err, &valErr)
}
