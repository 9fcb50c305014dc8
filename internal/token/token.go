// Package token is the unique-asset-ownership collaborator of the rental
// ledger: mint, transfer and burn of non-fungible ownership tokens. The
// ledger mirrors token ownership in its records but this service is the
// authority on who holds the token.
package token

import "context"

type Service interface {
	// Mint creates the ownership token for an asset. Fails with
	// domain.ErrTokenExists if the asset already has one.
	Mint(ctx context.Context, assetID uint64, owner string) error
	// Transfer moves the token between identities. Fails with
	// domain.ErrTokenNotFound or domain.ErrNotTokenOwner.
	Transfer(ctx context.Context, assetID uint64, from, to string) error
	// Burn destroys the token. Same failure modes as Transfer.
	Burn(ctx context.Context, assetID uint64, owner string) error
	// OwnerOf returns the current holder of an asset's token.
	OwnerOf(ctx context.Context, assetID uint64) (string, error)
}
