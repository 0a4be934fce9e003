package handlers

import (
	"context"

	"github.com/Ttaiwl/chronopass/internal/application/subscription/usecases"
)

// Service interface for SubscriptionHandler, satisfied by the engine service
// facade.

type subscriptionService interface {
	Mint(ctx context.Context, cmd usecases.MintPassCommand) (*usecases.MintPassResult, error)
	Renew(ctx context.Context, cmd usecases.RenewPassCommand) (*usecases.RenewPassResult, error)
	ToggleAutoRenew(ctx context.Context, cmd usecases.ToggleAutoRenewCommand) (*usecases.ToggleAutoRenewResult, error)
	Transfer(ctx context.Context, cmd usecases.TransferPassCommand) (*usecases.TransferPassResult, error)
	TransferLegacy(ctx context.Context, cmd usecases.TransferPassCommand) (*usecases.TransferPassResult, error)
}
