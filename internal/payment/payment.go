// Package payment is the value-transfer collaborator of the rental ledger.
// The ledger treats it as an external service: a transfer either settles in
// full or fails with no effect.
package payment

import "context"

// Service moves value between accounts identified by opaque identities.
type Service interface {
	// Transfer moves amount from one account to the other, failing with
	// domain.ErrInsufficientFunds when the source balance is too small.
	// A transfer from an account to itself still requires the balance to
	// cover the amount and settles to a net zero.
	Transfer(ctx context.Context, amount uint64, from, to string) error
	// Balance returns the current balance of an account. Unknown accounts
	// report zero.
	Balance(ctx context.Context, account string) (uint64, error)
	// Deposit credits an account, creating it if needed.
	Deposit(ctx context.Context, account string, amount uint64) error
}
