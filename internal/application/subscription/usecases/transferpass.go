package usecases

import (
	"context"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/domain/chain"
	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
	"github.com/Ttaiwl/chronopass/internal/domain/token"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

type TransferPassCommand struct {
	TokenID   uint64
	Sender    string
	Recipient string
	// Caller is the transaction-initiating identity. The self-transfer guard
	// compares Recipient against Caller, not Sender; with an operator-style
	// caller the two differ and the historical contract keeps the comparison
	// on the caller.
	Caller       string
	WithFeatures bool
}

type TransferPassResult struct {
	TokenID   uint64
	NewOwner  string
	EndHeight uint64
}

// TransferPassUseCase hands a still-valid pass to a new owner, updating the
// ownership registry and the subscription record in one transaction. The
// recipient receives exactly the remaining term; auto-renewal always resets
// and the feature list is carried over only on request. Deliberately not
// gated on the service flag: already-sold passes stay transferable while
// sales are paused.
type TransferPassUseCase struct {
	subscriptionRepo subscription.Repository
	ownershipRepo    token.Repository
	clock            chain.Clock
	tx               TransactionRunner
	logger           logger.Interface
}

func NewTransferPassUseCase(
	subscriptionRepo subscription.Repository,
	ownershipRepo token.Repository,
	clock chain.Clock,
	tx TransactionRunner,
	logger logger.Interface,
) *TransferPassUseCase {
	return &TransferPassUseCase{
		subscriptionRepo: subscriptionRepo,
		ownershipRepo:    ownershipRepo,
		clock:            clock,
		tx:               tx,
		logger:           logger,
	}
}

func (uc *TransferPassUseCase) Execute(ctx context.Context, cmd TransferPassCommand) (*TransferPassResult, error) {
	if cmd.Recipient == "" {
		return nil, subscription.ErrOwnerRequired
	}
	if cmd.Recipient == cmd.Caller {
		return nil, subscription.ErrSelfTransfer
	}

	now, err := uc.clock.Height(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain height: %w", err)
	}

	var result *TransferPassResult

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		sub, err := uc.subscriptionRepo.GetByTokenID(ctx, cmd.TokenID)
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			return subscription.ErrSubscriptionNotFound
		}
		if !sub.IsOwnedBy(cmd.Sender) {
			return subscription.ErrNotOwner
		}

		ownership, err := uc.ownershipRepo.GetByTokenID(ctx, cmd.TokenID)
		if err != nil {
			return fmt.Errorf("failed to get token ownership: %w", err)
		}
		if ownership == nil {
			return token.ErrTokenNotFound
		}

		if err := sub.TransferTo(cmd.Recipient, now, cmd.WithFeatures); err != nil {
			return err
		}
		if err := ownership.ReassignTo(cmd.Recipient); err != nil {
			return err
		}

		if err := uc.ownershipRepo.Update(ctx, ownership); err != nil {
			return fmt.Errorf("failed to update token ownership: %w", err)
		}
		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}

		result = &TransferPassResult{
			TokenID:   sub.TokenID(),
			NewOwner:  sub.Owner(),
			EndHeight: sub.EndHeight(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("pass transferred",
		"token_id", result.TokenID,
		"from", cmd.Sender,
		"to", result.NewOwner,
		"with_features", cmd.WithFeatures)

	return result, nil
}
