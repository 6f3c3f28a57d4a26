package models

import "errors"

// Sentinel errors shared across the engine. Handlers translate these to HTTP
// statuses; callers branch with errors.Is.
var (
	// ErrValidation covers malformed or missing input, rejected with no side effect
	ErrValidation = errors.New("invalid input")

	// ErrNotFound covers unknown transaction, hold, dispute or confirmation ids
	ErrNotFound = errors.New("not found")

	// ErrAlreadyLocked is returned when a hold already exists for the
	// transaction in a state other than held
	ErrAlreadyLocked = errors.New("transaction already locked")

	// ErrAlreadyTerminal rejects transitions on a released or refunded hold
	ErrAlreadyTerminal = errors.New("hold already settled")

	// ErrAlreadyResolved rejects a second resolution of the same dispute
	ErrAlreadyResolved = errors.New("dispute already resolved")

	// ErrAlreadyConfirmed is returned when a confirmation code was consumed before
	ErrAlreadyConfirmed = errors.New("delivery already confirmed")

	// ErrInvalidAmount rejects partial amounts outside (0, hold amount)
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientBalance rejects withdrawals above the derived available balance
	ErrInsufficientBalance = errors.New("insufficient available balance")

	// ErrExternalService marks a definite gateway or verification failure;
	// retryable, no ledger state was corrupted
	ErrExternalService = errors.New("external service failure")

	// ErrGatewayTimeout marks an ambiguous gateway outcome; the operation must
	// be retried with the same idempotency key, never treated as a failure
	ErrGatewayTimeout = errors.New("gateway timeout")
)
