package domain

import "errors"

// Failure kinds surfaced by the rental ledger. Every operation checks all of
// its preconditions before any side effect, so a returned error implies no
// state change.
var (
	// ErrNotAuthorized: the caller lacks the required role or identity.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrNotTokenOwner: the caller is not the asset owner where an
	// owner-only action is required.
	ErrNotTokenOwner = errors.New("caller is not the token owner")
	// ErrRentalNotFound: the referenced rental id does not exist.
	ErrRentalNotFound = errors.New("rental not found")
	// ErrDisputeNotFound: the rental has no dispute on record.
	ErrDisputeNotFound = errors.New("dispute not found")
	// ErrAlreadyRented: the asset or rental is already occupied, or a
	// cancel was attempted on a live rental.
	ErrAlreadyRented = errors.New("already rented")
	// ErrNotRented: the action requires an active renter but none exists.
	ErrNotRented = errors.New("rental has no renter")
	// ErrNotYetExpired: end was requested before the rental window closed.
	ErrNotYetExpired = errors.New("rental has not expired yet")
	// ErrCannotExtend: only the current renter may extend.
	ErrCannotExtend = errors.New("caller cannot extend this rental")
	// ErrInvalidExtension: extension length out of bounds, or the
	// extension arithmetic would overflow or divide by zero.
	ErrInvalidExtension = errors.New("invalid extension")
	// ErrNumericOverflow: a non-extension computation (rental window,
	// fee) would overflow. Rejected, never wrapped.
	ErrNumericOverflow = errors.New("arithmetic overflow")
	// ErrInvalidScore: rating score outside 1..5.
	ErrInvalidScore = errors.New("rating score must be between 1 and 5")
	// ErrInvalidReason: dispute reason empty or over the length bound.
	ErrInvalidReason = errors.New("invalid dispute reason")
	// ErrInsufficientFunds is propagated unchanged from the payment
	// collaborator.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Asset token collaborator failures.
	ErrTokenExists   = errors.New("asset token already exists")
	ErrTokenNotFound = errors.New("asset token not found")
)
