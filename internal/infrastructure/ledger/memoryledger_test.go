package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainLedger "github.com/Ttaiwl/chronopass/internal/domain/ledger"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

func newTestLedger(t *testing.T, seed map[string]uint64) *MemoryLedger {
	t.Helper()
	return NewMemoryLedger(seed, logger.NewLogger())
}

func TestMemoryLedger_BalanceOf(t *testing.T) {
	l := newTestLedger(t, map[string]uint64{"alice": 5000})

	balance, err := l.BalanceOf(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(5000), balance)

	balance, err = l.BalanceOf(context.Background(), "never-funded")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance, "unknown principals hold zero")

	_, err = l.BalanceOf(context.Background(), "")
	assert.ErrorIs(t, err, domainLedger.ErrUnknownAccount)
}

func TestMemoryLedger_Transfer(t *testing.T) {
	l := newTestLedger(t, map[string]uint64{"alice": 5000})

	err := l.Transfer(context.Background(), 1000, "alice", "treasury")
	require.NoError(t, err)

	aliceBalance, _ := l.BalanceOf(context.Background(), "alice")
	treasuryBalance, _ := l.BalanceOf(context.Background(), "treasury")
	assert.Equal(t, uint64(4000), aliceBalance)
	assert.Equal(t, uint64(1000), treasuryBalance)
}

func TestMemoryLedger_Transfer_InsufficientFunds(t *testing.T) {
	l := newTestLedger(t, map[string]uint64{"alice": 100})

	err := l.Transfer(context.Background(), 1000, "alice", "treasury")
	assert.ErrorIs(t, err, domainLedger.ErrInsufficientFunds)

	aliceBalance, _ := l.BalanceOf(context.Background(), "alice")
	treasuryBalance, _ := l.BalanceOf(context.Background(), "treasury")
	assert.Equal(t, uint64(100), aliceBalance, "failed transfer moves nothing")
	assert.Equal(t, uint64(0), treasuryBalance)
}

func TestMemoryLedger_Transfer_Invalid(t *testing.T) {
	l := newTestLedger(t, map[string]uint64{"alice": 100})

	assert.ErrorIs(t, l.Transfer(context.Background(), 10, "", "treasury"), domainLedger.ErrInvalidTransfer)
	assert.ErrorIs(t, l.Transfer(context.Background(), 10, "alice", ""), domainLedger.ErrInvalidTransfer)
	assert.ErrorIs(t, l.Transfer(context.Background(), 10, "alice", "alice"), domainLedger.ErrInvalidTransfer)
}

func TestMemoryLedger_Transfer_ZeroAmount(t *testing.T) {
	l := newTestLedger(t, nil)

	err := l.Transfer(context.Background(), 0, "alice", "treasury")
	assert.NoError(t, err, "zero-amount transfers settle trivially")
}
