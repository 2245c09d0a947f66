package service

import "errors"

// Caller-facing error kinds. Storage errors never cross this boundary
// untranslated.
var (
	// No valid identity was presented to a mutating operation.
	ErrUnauthenticated = errors.New("authentication required")
	// Malformed request input (bad id, bad date).
	ErrInvalidInput = errors.New("invalid input")
	// Wrong email/password pair; deliberately indistinct.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// Registration with an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// The slot does not exist or another claim won the race. The expected,
	// non-exceptional outcome of a lost race: clients should re-query
	// availability, not retry the same slot.
	ErrSlotUnavailable = errors.New("slot unavailable")
	ErrBookingNotFound = errors.New("booking not found")
	// Operation on a booking owned by a different user.
	ErrForbidden = errors.New("forbidden")
	// The booking was cancelled before; cancelled is terminal.
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	// The durable store could not complete the request.
	ErrStoreUnavailable = errors.New("storage temporarily unavailable")
)
