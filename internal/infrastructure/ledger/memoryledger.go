// Package ledger provides the in-memory account book used for development
// and tests. A production deployment swaps in an adapter backed by the real
// settlement system behind the same domain interface.
package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/Ttaiwl/chronopass/internal/domain/ledger"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

// MemoryLedger keeps balances in process memory. Transfers are guarded by a
// single mutex so a debit and its matching credit are never observed apart.
type MemoryLedger struct {
	mu       sync.Mutex
	balances map[string]uint64
	logger   logger.Interface
}

// NewMemoryLedger creates a ledger pre-funded with the given seed balances.
func NewMemoryLedger(seed map[string]uint64, log logger.Interface) *MemoryLedger {
	balances := make(map[string]uint64, len(seed))
	for principal, amount := range seed {
		balances[principal] = amount
	}
	return &MemoryLedger{
		balances: balances,
		logger:   log.Named("ledger.memory"),
	}
}

// BalanceOf returns the available balance of a principal. Unknown principals
// hold a zero balance rather than erroring, matching how account-based
// ledgers treat never-funded addresses.
func (l *MemoryLedger) BalanceOf(_ context.Context, principal string) (uint64, error) {
	if principal == "" {
		return 0, ledger.ErrUnknownAccount
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[principal], nil
}

// Transfer moves amount from one principal to another, all or nothing.
func (l *MemoryLedger) Transfer(_ context.Context, amount uint64, from, to string) error {
	if from == "" || to == "" {
		return ledger.ErrInvalidTransfer
	}
	if from == to {
		return fmt.Errorf("%w: sender and recipient are the same", ledger.ErrInvalidTransfer)
	}
	if amount == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balances[from]
	if balance < amount {
		return fmt.Errorf("%w: have %d, need %d", ledger.ErrInsufficientFunds, balance, amount)
	}

	l.balances[from] = balance - amount
	l.balances[to] += amount

	l.logger.Debugw("transfer settled",
		"amount", amount,
		"from", from,
		"to", to)

	return nil
}

// Credit adds funds to a principal. Exposed for tests and local seeding.
func (l *MemoryLedger) Credit(principal string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[principal] += amount
}

var _ ledger.Service = (*MemoryLedger)(nil)
