package usecases

import (
	"context"

	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
)

type VerifyOwnershipQuery struct {
	TokenID       uint64
	ExpectedOwner string
}

// VerifyOwnershipUseCase checks the stored owner against an expected
// principal. Unknown tokens error; mismatches simply return false.
type VerifyOwnershipUseCase struct {
	snapshots snapshotSource
}

func NewVerifyOwnershipUseCase(
	subscriptionRepo subscription.Repository,
	cache SnapshotCache,
) *VerifyOwnershipUseCase {
	return &VerifyOwnershipUseCase{
		snapshots: snapshotSource{subscriptionRepo: subscriptionRepo, cache: cache},
	}
}

func (uc *VerifyOwnershipUseCase) Execute(ctx context.Context, q VerifyOwnershipQuery) (bool, error) {
	snap, err := uc.snapshots.load(ctx, q.TokenID)
	if err != nil {
		return false, err
	}
	if snap == nil {
		return false, subscription.ErrSubscriptionNotFound
	}

	return snap.Owner == q.ExpectedOwner, nil
}
