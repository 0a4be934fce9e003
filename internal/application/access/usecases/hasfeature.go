package usecases

import (
	"context"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/domain/chain"
	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
)

type HasFeatureQuery struct {
	TokenID    uint64
	FeatureKey string
}

// HasFeatureUseCase answers feature membership for a known token: true only
// when the pass is currently active and carries the key. An unknown key on a
// known token is false, not an error; an unknown token errors.
type HasFeatureUseCase struct {
	snapshots snapshotSource
	clock     chain.Clock
}

func NewHasFeatureUseCase(
	subscriptionRepo subscription.Repository,
	cache SnapshotCache,
	clock chain.Clock,
) *HasFeatureUseCase {
	return &HasFeatureUseCase{
		snapshots: snapshotSource{subscriptionRepo: subscriptionRepo, cache: cache},
		clock:     clock,
	}
}

func (uc *HasFeatureUseCase) Execute(ctx context.Context, q HasFeatureQuery) (bool, error) {
	snap, err := uc.snapshots.load(ctx, q.TokenID)
	if err != nil {
		return false, err
	}
	if snap == nil {
		return false, subscription.ErrSubscriptionNotFound
	}

	now, err := uc.clock.Height(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read chain height: %w", err)
	}

	return snap.IsActiveAt(now) && snap.HasFeature(q.FeatureKey), nil
}
