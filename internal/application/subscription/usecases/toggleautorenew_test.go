package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

func newToggleFixture(t *testing.T) (*mintFixture, *ToggleAutoRenewUseCase) {
	t.Helper()

	f := newMintFixture(t, map[string]uint64{"alice": 5000})
	_, err := f.uc.Execute(context.Background(), MintPassCommand{TierID: 1, Caller: "alice"})
	require.NoError(t, err)

	return f, NewToggleAutoRenewUseCase(f.subRepo, logger.NewLogger())
}

func TestToggleAutoRenew_FlipsFlag(t *testing.T) {
	f, uc := newToggleFixture(t)

	result, err := uc.Execute(context.Background(), ToggleAutoRenewCommand{TokenID: 1, Caller: "alice"})
	require.NoError(t, err)
	assert.True(t, result.AutoRenew)

	result, err = uc.Execute(context.Background(), ToggleAutoRenewCommand{TokenID: 1, Caller: "alice"})
	require.NoError(t, err)
	assert.False(t, result.AutoRenew)

	sub, _ := f.subRepo.GetByTokenID(context.Background(), 1)
	assert.False(t, sub.AutoRenew())
}

func TestToggleAutoRenew_NotOwner(t *testing.T) {
	_, uc := newToggleFixture(t)

	result, err := uc.Execute(context.Background(), ToggleAutoRenewCommand{TokenID: 1, Caller: "mallory"})

	assert.ErrorIs(t, err, subscription.ErrNotOwner)
	assert.Nil(t, result)
}

func TestToggleAutoRenew_UnknownToken(t *testing.T) {
	_, uc := newToggleFixture(t)

	_, err := uc.Execute(context.Background(), ToggleAutoRenewCommand{TokenID: 42, Caller: "alice"})

	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
}

func TestToggleAutoRenew_WorksOnExpiredPass(t *testing.T) {
	f, uc := newToggleFixture(t)
	f.clock.height = 100 + 30*144 + 1

	result, err := uc.Execute(context.Background(), ToggleAutoRenewCommand{TokenID: 1, Caller: "alice"})

	require.NoError(t, err, "the flag stays settable after expiry")
	assert.True(t, result.AutoRenew)
}

func TestToggleAutoRenew_IgnoresServiceGate(t *testing.T) {
	f, uc := newToggleFixture(t)
	f.stateRepo.state.ToggleService()

	_, err := uc.Execute(context.Background(), ToggleAutoRenewCommand{TokenID: 1, Caller: "alice"})

	require.NoError(t, err)
}
