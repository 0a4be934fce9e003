package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

type transferFixture struct {
	*mintFixture
	transfer *TransferPassUseCase
}

func newTransferFixture(t *testing.T) *transferFixture {
	t.Helper()

	mf := newMintFixture(t, map[string]uint64{"alice": 5000})
	result, err := mf.uc.Execute(context.Background(), MintPassCommand{TierID: 1, Caller: "alice"})
	require.NoError(t, err)
	sub, _ := mf.subRepo.GetByTokenID(context.Background(), result.TokenID)
	require.True(t, sub.ToggleAutoRenew())

	return &transferFixture{
		mintFixture: mf,
		transfer: NewTransferPassUseCase(
			mf.subRepo, mf.ownRepo, mf.clock, noopTx{}, logger.NewLogger(),
		),
	}
}

func TestTransferPass_StripsFeaturesAndAutoRenew(t *testing.T) {
	f := newTransferFixture(t)

	result, err := f.transfer.Execute(context.Background(), TransferPassCommand{
		TokenID: 1, Sender: "alice", Recipient: "bob", Caller: "alice",
	})

	require.NoError(t, err)
	assert.Equal(t, "bob", result.NewOwner)
	assert.Equal(t, uint64(100+30*144), result.EndHeight, "the recipient gets the remaining term, nothing more")

	sub, _ := f.subRepo.GetByTokenID(context.Background(), 1)
	assert.Equal(t, "bob", sub.Owner())
	assert.Empty(t, sub.Features())
	assert.False(t, sub.AutoRenew())

	ownership, _ := f.ownRepo.GetByTokenID(context.Background(), 1)
	assert.Equal(t, "bob", ownership.Holder())
}

func TestTransferPass_WithFeatures(t *testing.T) {
	f := newTransferFixture(t)

	_, err := f.transfer.Execute(context.Background(), TransferPassCommand{
		TokenID: 1, Sender: "alice", Recipient: "bob", Caller: "alice", WithFeatures: true,
	})

	require.NoError(t, err)
	sub, _ := f.subRepo.GetByTokenID(context.Background(), 1)
	assert.Equal(t, []string{"core"}, sub.Features())
	assert.False(t, sub.AutoRenew(), "auto-renewal resets even when features carry over")
}

func TestTransferPass_NotOwner(t *testing.T) {
	f := newTransferFixture(t)

	result, err := f.transfer.Execute(context.Background(), TransferPassCommand{
		TokenID: 1, Sender: "mallory", Recipient: "bob", Caller: "mallory",
	})

	assert.ErrorIs(t, err, subscription.ErrNotOwner)
	assert.Nil(t, result)

	sub, _ := f.subRepo.GetByTokenID(context.Background(), 1)
	assert.Equal(t, "alice", sub.Owner())
}

func TestTransferPass_SelfTransferComparesCaller(t *testing.T) {
	f := newTransferFixture(t)

	_, err := f.transfer.Execute(context.Background(), TransferPassCommand{
		TokenID: 1, Sender: "alice", Recipient: "alice", Caller: "alice",
	})
	assert.ErrorIs(t, err, subscription.ErrSelfTransfer)

	// An operator-initiated transfer back to the sender is not a
	// self-transfer; only recipient == caller is rejected.
	result, err := f.transfer.Execute(context.Background(), TransferPassCommand{
		TokenID: 1, Sender: "alice", Recipient: "alice", Caller: "operator",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", result.NewOwner)
}

func TestTransferPass_Expired(t *testing.T) {
	f := newTransferFixture(t)
	f.clock.height = 100 + 30*144 + 1

	result, err := f.transfer.Execute(context.Background(), TransferPassCommand{
		TokenID: 1, Sender: "alice", Recipient: "bob", Caller: "alice",
	})

	assert.ErrorIs(t, err, subscription.ErrTransferExpired)
	assert.Nil(t, result)

	sub, _ := f.subRepo.GetByTokenID(context.Background(), 1)
	assert.Equal(t, "alice", sub.Owner())
	ownership, _ := f.ownRepo.GetByTokenID(context.Background(), 1)
	assert.Equal(t, "alice", ownership.Holder())
}

func TestTransferPass_EmptyRecipient(t *testing.T) {
	f := newTransferFixture(t)

	_, err := f.transfer.Execute(context.Background(), TransferPassCommand{
		TokenID: 1, Sender: "alice", Recipient: "", Caller: "alice",
	})

	assert.ErrorIs(t, err, subscription.ErrOwnerRequired)
}

func TestTransferPass_UnknownToken(t *testing.T) {
	f := newTransferFixture(t)

	_, err := f.transfer.Execute(context.Background(), TransferPassCommand{
		TokenID: 42, Sender: "alice", Recipient: "bob", Caller: "alice",
	})

	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
}

func TestTransferPass_WorksWhileServiceDisabled(t *testing.T) {
	f := newTransferFixture(t)
	f.stateRepo.state.ToggleService()

	result, err := f.transfer.Execute(context.Background(), TransferPassCommand{
		TokenID: 1, Sender: "alice", Recipient: "bob", Caller: "alice",
	})

	require.NoError(t, err, "already-sold passes stay transferable while sales are paused")
	assert.Equal(t, "bob", result.NewOwner)
}
