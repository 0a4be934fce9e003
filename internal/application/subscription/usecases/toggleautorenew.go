package usecases

import (
	"context"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

type ToggleAutoRenewCommand struct {
	TokenID uint64
	Caller  string
}

type ToggleAutoRenewResult struct {
	TokenID   uint64
	AutoRenew bool
}

// ToggleAutoRenewUseCase flips the auto-renewal flag. No funds move, the
// service gate is not consulted, and the flag may be flipped on an expired
// pass.
type ToggleAutoRenewUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewToggleAutoRenewUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ToggleAutoRenewUseCase {
	return &ToggleAutoRenewUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ToggleAutoRenewUseCase) Execute(ctx context.Context, cmd ToggleAutoRenewCommand) (*ToggleAutoRenewResult, error) {
	sub, err := uc.subscriptionRepo.GetByTokenID(ctx, cmd.TokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, subscription.ErrSubscriptionNotFound
	}
	if !sub.IsOwnedBy(cmd.Caller) {
		return nil, subscription.ErrNotOwner
	}

	enabled := sub.ToggleAutoRenew()

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("auto-renewal toggled", "token_id", cmd.TokenID, "auto_renew", enabled)

	return &ToggleAutoRenewResult{TokenID: cmd.TokenID, AutoRenew: enabled}, nil
}
