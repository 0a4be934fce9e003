package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ttaiwl/chronopass/internal/application/subscription/usecases"
	"github.com/Ttaiwl/chronopass/internal/domain/engine"
	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
	"github.com/Ttaiwl/chronopass/internal/interfaces/http/handlers/testutil"
)

type mockSubscriptionService struct {
	mintResult     *usecases.MintPassResult
	renewResult    *usecases.RenewPassResult
	toggleResult   *usecases.ToggleAutoRenewResult
	transferResult *usecases.TransferPassResult
	err            error

	lastTransferCmd usecases.TransferPassCommand
}

func (m *mockSubscriptionService) Mint(ctx context.Context, cmd usecases.MintPassCommand) (*usecases.MintPassResult, error) {
	return m.mintResult, m.err
}

func (m *mockSubscriptionService) Renew(ctx context.Context, cmd usecases.RenewPassCommand) (*usecases.RenewPassResult, error) {
	return m.renewResult, m.err
}

func (m *mockSubscriptionService) ToggleAutoRenew(ctx context.Context, cmd usecases.ToggleAutoRenewCommand) (*usecases.ToggleAutoRenewResult, error) {
	return m.toggleResult, m.err
}

func (m *mockSubscriptionService) Transfer(ctx context.Context, cmd usecases.TransferPassCommand) (*usecases.TransferPassResult, error) {
	m.lastTransferCmd = cmd
	return m.transferResult, m.err
}

func (m *mockSubscriptionService) TransferLegacy(ctx context.Context, cmd usecases.TransferPassCommand) (*usecases.TransferPassResult, error) {
	m.lastTransferCmd = cmd
	return m.transferResult, m.err
}

func TestSubscriptionHandler_Mint_Success(t *testing.T) {
	svc := &mockSubscriptionService{
		mintResult: &usecases.MintPassResult{TokenID: 1, StartHeight: 100, EndHeight: 100 + 30*144},
	}
	handler := NewSubscriptionHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions", MintRequest{TierID: 1})
	testutil.SetPrincipal(c, "alice")

	handler.Mint(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestSubscriptionHandler_Mint_MissingTier(t *testing.T) {
	handler := NewSubscriptionHandler(&mockSubscriptionService{})

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions", map[string]string{})
	testutil.SetPrincipal(c, "alice")

	handler.Mint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscriptionHandler_Mint_ServiceDisabled(t *testing.T) {
	svc := &mockSubscriptionService{err: engine.ErrServiceDisabled}
	handler := NewSubscriptionHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions", MintRequest{TierID: 1})
	testutil.SetPrincipal(c, "alice")

	handler.Mint(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestSubscriptionHandler_Renew_Expired(t *testing.T) {
	svc := &mockSubscriptionService{err: subscription.ErrSubscriptionExpired}
	handler := NewSubscriptionHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/1/renew", nil)
	testutil.SetURLParam(c, "id", "1")
	testutil.SetPrincipal(c, "alice")

	handler.Renew(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubscriptionHandler_Renew_InvalidID(t *testing.T) {
	handler := NewSubscriptionHandler(&mockSubscriptionService{})

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/abc/renew", nil)
	testutil.SetURLParam(c, "id", "abc")
	testutil.SetPrincipal(c, "alice")

	handler.Renew(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscriptionHandler_Transfer_SetsCallerFromPrincipal(t *testing.T) {
	svc := &mockSubscriptionService{
		transferResult: &usecases.TransferPassResult{TokenID: 1, NewOwner: "bob"},
	}
	handler := NewSubscriptionHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/1/transfer",
		TransferRequest{Recipient: "bob", WithFeatures: true})
	testutil.SetURLParam(c, "id", "1")
	testutil.SetPrincipal(c, "alice")

	handler.Transfer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", svc.lastTransferCmd.Sender)
	assert.Equal(t, "alice", svc.lastTransferCmd.Caller)
	assert.Equal(t, "bob", svc.lastTransferCmd.Recipient)
	assert.True(t, svc.lastTransferCmd.WithFeatures)
}

func TestSubscriptionHandler_Transfer_SelfTransfer(t *testing.T) {
	svc := &mockSubscriptionService{err: subscription.ErrSelfTransfer}
	handler := NewSubscriptionHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/1/transfer",
		TransferRequest{Recipient: "alice"})
	testutil.SetURLParam(c, "id", "1")
	testutil.SetPrincipal(c, "alice")

	handler.Transfer(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscriptionHandler_Transfer_MissingRecipient(t *testing.T) {
	handler := NewSubscriptionHandler(&mockSubscriptionService{})

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/1/transfer", map[string]string{})
	testutil.SetURLParam(c, "id", "1")
	testutil.SetPrincipal(c, "alice")

	handler.Transfer(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
