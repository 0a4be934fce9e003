package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ttaiwl/chronopass/internal/domain/engine"
	"github.com/Ttaiwl/chronopass/internal/domain/ledger"
	"github.com/Ttaiwl/chronopass/internal/domain/tier"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

const testAdmin = "admin"

type mintFixture struct {
	stateRepo *fakeStateRepo
	tierRepo  *fakeTierRepo
	subRepo   *fakeSubscriptionRepo
	ownRepo   *fakeOwnershipRepo
	ledger    *fakeLedger
	clock     *fakeClock
	uc        *MintPassUseCase
}

func newMintFixture(t *testing.T, balances map[string]uint64) *mintFixture {
	t.Helper()

	f := &mintFixture{
		stateRepo: &fakeStateRepo{},
		tierRepo:  newFakeTierRepo(),
		subRepo:   newFakeSubscriptionRepo(),
		ownRepo:   newFakeOwnershipRepo(),
		ledger:    newFakeLedger(balances),
		clock:     &fakeClock{height: 100},
	}

	tier1, err := tier.NewTier(1, 1000, 30, 5)
	require.NoError(t, err)
	require.NoError(t, f.tierRepo.Upsert(context.Background(), tier1))

	f.uc = NewMintPassUseCase(
		f.stateRepo, f.tierRepo, f.subRepo, f.ownRepo,
		f.ledger, f.clock, noopTx{},
		testAdmin, []string{"core"}, logger.NewLogger(),
	)
	return f
}

func TestMintPass_Success(t *testing.T) {
	f := newMintFixture(t, map[string]uint64{"alice": 5000})

	result, err := f.uc.Execute(context.Background(), MintPassCommand{TierID: 1, Caller: "alice"})

	require.NoError(t, err)
	assert.Equal(t, uint64(1), result.TokenID)
	assert.Equal(t, uint64(100), result.StartHeight)
	assert.Equal(t, uint64(100+30*144), result.EndHeight)

	sub, _ := f.subRepo.GetByTokenID(context.Background(), 1)
	require.NotNil(t, sub)
	assert.Equal(t, "alice", sub.Owner())
	assert.Equal(t, []string{"core"}, sub.Features())
	assert.False(t, sub.AutoRenew())

	ownership, _ := f.ownRepo.GetByTokenID(context.Background(), 1)
	require.NotNil(t, ownership)
	assert.Equal(t, "alice", ownership.Holder())

	assert.Equal(t, uint64(4000), f.ledger.balances["alice"])
	assert.Equal(t, uint64(1000), f.ledger.balances[testAdmin])
	assert.Equal(t, uint64(1), f.stateRepo.state.TokenCounter())
}

func TestMintPass_SequentialTokenIDs(t *testing.T) {
	f := newMintFixture(t, map[string]uint64{"alice": 5000, "bob": 5000})

	first, err := f.uc.Execute(context.Background(), MintPassCommand{TierID: 1, Caller: "alice"})
	require.NoError(t, err)
	second, err := f.uc.Execute(context.Background(), MintPassCommand{TierID: 1, Caller: "bob"})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.TokenID)
	assert.Equal(t, uint64(2), second.TokenID)
}

func TestMintPass_InsufficientFunds(t *testing.T) {
	f := newMintFixture(t, map[string]uint64{"alice": 100})

	result, err := f.uc.Execute(context.Background(), MintPassCommand{TierID: 1, Caller: "alice"})

	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	assert.Nil(t, result)
	assert.Equal(t, uint64(100), f.ledger.balances["alice"], "no funds move on a failed mint")
	assert.Equal(t, 0, f.ledger.transfers)
	assert.Nil(t, f.stateRepo.state, "counter is not advanced on a failed mint")
}

func TestMintPass_UnknownTier(t *testing.T) {
	f := newMintFixture(t, map[string]uint64{"alice": 5000})

	result, err := f.uc.Execute(context.Background(), MintPassCommand{TierID: 99, Caller: "alice"})

	assert.ErrorIs(t, err, tier.ErrTierNotFound)
	assert.Nil(t, result)
	assert.Equal(t, 0, f.ledger.transfers)
}

func TestMintPass_ServiceDisabled(t *testing.T) {
	f := newMintFixture(t, map[string]uint64{"alice": 5000})

	state := engine.NewState()
	state.ToggleService()
	require.NoError(t, f.stateRepo.Save(context.Background(), state))

	result, err := f.uc.Execute(context.Background(), MintPassCommand{TierID: 1, Caller: "alice"})

	assert.ErrorIs(t, err, engine.ErrServiceDisabled)
	assert.Nil(t, result)
	assert.Equal(t, 0, f.ledger.transfers, "gate check runs before payment")
}

func TestMintPass_FreeTier(t *testing.T) {
	f := newMintFixture(t, map[string]uint64{})

	free, err := tier.NewTier(2, 0, 7, 0)
	require.NoError(t, err)
	require.NoError(t, f.tierRepo.Upsert(context.Background(), free))

	result, err := f.uc.Execute(context.Background(), MintPassCommand{TierID: 2, Caller: "alice"})

	require.NoError(t, err, "a zero-price tier mints without funds")
	assert.Equal(t, uint64(100+7*144), result.EndHeight)
}
