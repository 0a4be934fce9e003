package usecases

import (
	"context"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/domain/chain"
	"github.com/Ttaiwl/chronopass/internal/domain/engine"
	"github.com/Ttaiwl/chronopass/internal/domain/ledger"
	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
	"github.com/Ttaiwl/chronopass/internal/domain/tier"
	"github.com/Ttaiwl/chronopass/internal/domain/token"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

type MintPassCommand struct {
	TierID uint64
	Caller string
}

type MintPassResult struct {
	TokenID     uint64
	StartHeight uint64
	EndHeight   uint64
}

// MintPassUseCase issues a new pass: it charges the caller the current tier
// price, allocates the next token id and records the subscription and its
// ownership in one transaction. The ledger transfer is the single point of
// failure; it runs before any registry write so a failed payment leaves no
// state behind.
type MintPassUseCase struct {
	stateRepo        engine.StateRepository
	tierRepo         tier.Repository
	subscriptionRepo subscription.Repository
	ownershipRepo    token.Repository
	ledger           ledger.Service
	clock            chain.Clock
	tx               TransactionRunner
	adminPrincipal   string
	defaultFeatures  []string
	logger           logger.Interface
}

func NewMintPassUseCase(
	stateRepo engine.StateRepository,
	tierRepo tier.Repository,
	subscriptionRepo subscription.Repository,
	ownershipRepo token.Repository,
	ledgerSvc ledger.Service,
	clock chain.Clock,
	tx TransactionRunner,
	adminPrincipal string,
	defaultFeatures []string,
	logger logger.Interface,
) *MintPassUseCase {
	return &MintPassUseCase{
		stateRepo:        stateRepo,
		tierRepo:         tierRepo,
		subscriptionRepo: subscriptionRepo,
		ownershipRepo:    ownershipRepo,
		ledger:           ledgerSvc,
		clock:            clock,
		tx:               tx,
		adminPrincipal:   adminPrincipal,
		defaultFeatures:  defaultFeatures,
		logger:           logger,
	}
}

func (uc *MintPassUseCase) Execute(ctx context.Context, cmd MintPassCommand) (*MintPassResult, error) {
	if cmd.Caller == "" {
		return nil, subscription.ErrOwnerRequired
	}

	now, err := uc.clock.Height(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain height: %w", err)
	}

	var result *MintPassResult
	paid := false

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		state, err := uc.stateRepo.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load engine state: %w", err)
		}
		if state == nil {
			state = engine.NewState()
		}
		if !state.ServiceEnabled() {
			return engine.ErrServiceDisabled
		}

		t, err := uc.tierRepo.GetByID(ctx, cmd.TierID)
		if err != nil {
			return fmt.Errorf("failed to get tier: %w", err)
		}
		if t == nil {
			return tier.ErrTierNotFound
		}

		balance, err := uc.ledger.BalanceOf(ctx, cmd.Caller)
		if err != nil {
			return fmt.Errorf("failed to read balance: %w", err)
		}
		if balance < t.Price() {
			return ledger.ErrInsufficientFunds
		}

		// The transfer is confirmed before any registry write so that a
		// payment failure aborts the mint with zero state change.
		if err := uc.ledger.Transfer(ctx, t.Price(), cmd.Caller, uc.adminPrincipal); err != nil {
			return fmt.Errorf("payment transfer failed: %w", err)
		}
		paid = true

		tokenID := state.AllocateToken()

		ownership, err := token.NewOwnership(tokenID, cmd.Caller)
		if err != nil {
			return err
		}
		if err := uc.ownershipRepo.Create(ctx, ownership); err != nil {
			return fmt.Errorf("failed to record ownership: %w", err)
		}

		sub, err := subscription.NewSubscription(tokenID, cmd.Caller, cmd.TierID, now, t.DurationBlocks(), uc.defaultFeatures)
		if err != nil {
			return err
		}
		if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}

		if err := uc.stateRepo.Save(ctx, state); err != nil {
			return fmt.Errorf("failed to advance token counter: %w", err)
		}

		result = &MintPassResult{
			TokenID:     tokenID,
			StartHeight: sub.StartHeight(),
			EndHeight:   sub.EndHeight(),
		}
		return nil
	})

	if err != nil {
		if paid {
			// The external ledger is durable once Transfer returns; a roll-back
			// after payment needs manual reconciliation.
			uc.logger.Errorw("payment taken but mint rolled back",
				"error", err, "tier_id", cmd.TierID, "caller", cmd.Caller)
		}
		return nil, err
	}

	uc.logger.Infow("pass minted",
		"token_id", result.TokenID,
		"tier_id", cmd.TierID,
		"owner", cmd.Caller,
		"start_height", result.StartHeight,
		"end_height", result.EndHeight)

	return result, nil
}
