package usecases

import (
	"context"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/domain/chain"
	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
)

type VerifyAccessQuery struct {
	TokenID    uint64
	FeatureKey string
}

type VerifyAccessResult struct {
	IsActive   bool   `json:"is_active"`
	Owner      string `json:"owner"`
	HasFeature bool   `json:"has_feature"`
}

// VerifyAccessUseCase is the single call a relying service is expected to
// use. It never errors for a merely-expired pass; only unknown tokens fail.
type VerifyAccessUseCase struct {
	snapshots snapshotSource
	clock     chain.Clock
}

func NewVerifyAccessUseCase(
	subscriptionRepo subscription.Repository,
	cache SnapshotCache,
	clock chain.Clock,
) *VerifyAccessUseCase {
	return &VerifyAccessUseCase{
		snapshots: snapshotSource{subscriptionRepo: subscriptionRepo, cache: cache},
		clock:     clock,
	}
}

func (uc *VerifyAccessUseCase) Execute(ctx context.Context, q VerifyAccessQuery) (*VerifyAccessResult, error) {
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

	active := snap.IsActiveAt(now)
	return &VerifyAccessResult{
		IsActive:   active,
		Owner:      snap.Owner,
		HasFeature: active && snap.HasFeature(q.FeatureKey),
	}, nil
}
