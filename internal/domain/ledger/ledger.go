// Package ledger defines the value-transfer boundary. Transfers are atomic
// and externally durable once they return success; the engine never observes
// a partial transfer.
package ledger

import "context"

// Service is the external fungible-balance ledger the engine charges against.
type Service interface {
	// BalanceOf returns the available balance of a principal.
	BalanceOf(ctx context.Context, principal string) (uint64, error)

	// Transfer moves amount from one principal to another, all or nothing.
	Transfer(ctx context.Context, amount uint64, from, to string) error
}
