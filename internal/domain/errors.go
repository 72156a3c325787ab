package domain

import "errors"

// Sentinel errors for classifying backend failures.
// The API client wraps these so commands and state slices can react to an
// error category without inspecting HTTP status codes.
//
//	return fmt.Errorf("failed to apply to job %q: %w", id, domain.ErrConflict)
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the backend throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a state or uniqueness conflict, such as
	// applying twice to the same job.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates the backend rejected the request payload.
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientCredits indicates the account balance cannot cover
	// the requested operation.
	ErrInsufficientCredits = errors.New("insufficient credits")
)
