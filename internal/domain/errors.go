package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every usecase. Callers test with errors.Is.
var (
	// ErrValidation marks malformed input (non-positive amount, out-of-range day, blank name...)
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a reference to a wallet, card, debt, entry or operator that does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict marks an operation that contradicts the current state,
	// including a lost optimistic-concurrency race
	ErrConflict = errors.New("conflict")

	// ErrSameEndpoint is returned when a transfer names the same wallet on both sides
	ErrSameEndpoint = errors.New("sender and receiver wallets must be different")

	// ErrInsufficientFunds is returned when a transfer exceeds the sender balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientCredit is returned when a debt exceeds the card's available credit
	ErrInsufficientCredit = errors.New("insufficient credit")

	// ErrInsufficientRebate is returned when an invoice payment asks for more
	// rebate than the card has accumulated
	ErrInsufficientRebate = errors.New("insufficient rebate")

	// ErrFatalState marks an unrecognised kind/status enumerator. It is a programming
	// defect, not a user error, and must never be swallowed.
	ErrFatalState = errors.New("fatal state")

	// ErrVersionMismatch is wrapped into ErrConflict by repositories when a
	// compare-and-swap update finds a newer version.
	ErrVersionMismatch = fmt.Errorf("%w: concurrent modification", ErrConflict)
)

// Validationf builds an ErrValidation-wrapped error
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf builds an ErrNotFound-wrapped error
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflictf builds an ErrConflict-wrapped error
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// FatalStatef builds an ErrFatalState-wrapped error
func FatalStatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFatalState, fmt.Sprintf(format, args...))
}
