package usecases

import (
	"context"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
)

// snapshotSource reads pass snapshots through the optional cache.
type snapshotSource struct {
	subscriptionRepo subscription.Repository
	cache            SnapshotCache
}

// load returns (nil, nil) for tokens that were never minted.
func (s *snapshotSource) load(ctx context.Context, tokenID uint64) (*SubscriptionSnapshot, error) {
	if s.cache != nil {
		if snap, ok := s.cache.Get(ctx, tokenID); ok {
			return snap, nil
		}
	}

	sub, err := s.subscriptionRepo.GetByTokenID(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, nil
	}

	snap := snapshotFrom(sub)
	if s.cache != nil {
		s.cache.Set(ctx, snap)
	}
	return snap, nil
}

func snapshotFrom(sub *subscription.Subscription) *SubscriptionSnapshot {
	return &SubscriptionSnapshot{
		TokenID:     sub.TokenID(),
		Owner:       sub.Owner(),
		StartHeight: sub.StartHeight(),
		EndHeight:   sub.EndHeight(),
		TierID:      sub.TierID(),
		AutoRenew:   sub.AutoRenew(),
		Features:    sub.Features(),
		Renewals:    sub.Renewals(),
	}
}
