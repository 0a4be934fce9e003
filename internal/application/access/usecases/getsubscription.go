package usecases

import (
	"context"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/domain/chain"
	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
)

type GetSubscriptionQuery struct {
	TokenID uint64
}

type GetSubscriptionResult struct {
	IsActive     bool                  `json:"is_active"`
	Subscription *SubscriptionSnapshot `json:"subscription"`
}

// GetSubscriptionUseCase returns the stored record together with the derived
// activity label. Expiry never errors here; it is reported through IsActive.
type GetSubscriptionUseCase struct {
	snapshots snapshotSource
	clock     chain.Clock
}

func NewGetSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	cache SnapshotCache,
	clock chain.Clock,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		snapshots: snapshotSource{subscriptionRepo: subscriptionRepo, cache: cache},
		clock:     clock,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, q GetSubscriptionQuery) (*GetSubscriptionResult, error) {
	snap, err := uc.snapshots.load(ctx, q.TokenID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, subscription.ErrSubscriptionNotFound
	}

	now, err := uc.clock.Height(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain height: %w", err)
	}

	return &GetSubscriptionResult{
		IsActive:     snap.IsActiveAt(now),
		Subscription: snap,
	}, nil
}
