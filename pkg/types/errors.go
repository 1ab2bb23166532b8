package types

import "errors"

// Standard error values returned across the repository and store layers.
// Callers branch on these with errors.Is; wrapped variants carry the
// operation context.
var (
	// ErrDuplicateLogin is returned when registering a login that is
	// already taken.
	ErrDuplicateLogin = errors.New("login already taken")

	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidRole is returned for a role outside the closed enum.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidStatus is returned for a tracking status outside the
	// closed enum.
	ErrInvalidStatus = errors.New("invalid tracking status")

	// ErrInvalidPrice is returned for a negative catalog price.
	ErrInvalidPrice = errors.New("price must not be negative")

	// ErrInvalidUnits is returned for a non-positive order line unit
	// count.
	ErrInvalidUnits = errors.New("units must be positive")

	// ErrNotAuthorized is returned when the session role does not permit
	// the requested operation.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrSequenceUnset is returned when a sequence has no current value
	// in this session.
	ErrSequenceUnset = errors.New("sequence has no current value")

	// ErrStoreClosed is returned by operations on a closed store.
	ErrStoreClosed = errors.New("store is closed")
)
