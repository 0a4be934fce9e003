package usecases

import (
	"context"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/domain/chain"
	"github.com/Ttaiwl/chronopass/internal/domain/engine"
	"github.com/Ttaiwl/chronopass/internal/domain/ledger"
	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
	"github.com/Ttaiwl/chronopass/internal/domain/tier"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

type RenewPassCommand struct {
	TokenID uint64
	Caller  string
}

type RenewPassResult struct {
	TokenID   uint64
	EndHeight uint64
	Renewals  uint32
}

// RenewPassUseCase extends a still-valid pass. The current tier configuration
// is re-read at renewal time, so price and duration changes apply here rather
// than at issuance. The new window is anchored at the current height; unused
// remaining time does not stack.
type RenewPassUseCase struct {
	stateRepo        engine.StateRepository
	tierRepo         tier.Repository
	subscriptionRepo subscription.Repository
	ledger           ledger.Service
	clock            chain.Clock
	tx               TransactionRunner
	adminPrincipal   string
	logger           logger.Interface
}

func NewRenewPassUseCase(
	stateRepo engine.StateRepository,
	tierRepo tier.Repository,
	subscriptionRepo subscription.Repository,
	ledgerSvc ledger.Service,
	clock chain.Clock,
	tx TransactionRunner,
	adminPrincipal string,
	logger logger.Interface,
) *RenewPassUseCase {
	return &RenewPassUseCase{
		stateRepo:        stateRepo,
		tierRepo:         tierRepo,
		subscriptionRepo: subscriptionRepo,
		ledger:           ledgerSvc,
		clock:            clock,
		tx:               tx,
		adminPrincipal:   adminPrincipal,
		logger:           logger,
	}
}

func (uc *RenewPassUseCase) Execute(ctx context.Context, cmd RenewPassCommand) (*RenewPassResult, error) {
	now, err := uc.clock.Height(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain height: %w", err)
	}

	var result *RenewPassResult
	paid := false

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		state, err := uc.stateRepo.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load engine state: %w", err)
		}
		if state == nil || !state.ServiceEnabled() {
			return engine.ErrServiceDisabled
		}

		sub, err := uc.subscriptionRepo.GetByTokenID(ctx, cmd.TokenID)
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			return subscription.ErrSubscriptionNotFound
		}
		if !sub.IsOwnedBy(cmd.Caller) {
			return subscription.ErrNotOwner
		}
		if !sub.IsActiveAt(now) {
			return subscription.ErrSubscriptionExpired
		}

		t, err := uc.tierRepo.GetByID(ctx, sub.TierID())
		if err != nil {
			return fmt.Errorf("failed to get tier: %w", err)
		}
		if t == nil {
			return tier.ErrTierNotFound
		}
		if t.MaxRenewals() > 0 && sub.Renewals() >= t.MaxRenewals() {
			return subscription.ErrRenewalLimitReached
		}

		if err := uc.ledger.Transfer(ctx, t.Price(), cmd.Caller, uc.adminPrincipal); err != nil {
			return fmt.Errorf("payment transfer failed: %w", err)
		}
		paid = true

		if err := sub.Renew(now, t.DurationBlocks(), t.MaxRenewals()); err != nil {
			return err
		}
		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}

		result = &RenewPassResult{
			TokenID:   sub.TokenID(),
			EndHeight: sub.EndHeight(),
			Renewals:  sub.Renewals(),
		}
		return nil
	})

	if err != nil {
		if paid {
			uc.logger.Errorw("payment taken but renewal rolled back",
				"error", err, "token_id", cmd.TokenID, "caller", cmd.Caller)
		}
		return nil, err
	}

	uc.logger.Infow("pass renewed",
		"token_id", result.TokenID,
		"end_height", result.EndHeight,
		"renewals", result.Renewals)

	return result, nil
}
