package handlers

import (
	"context"

	"github.com/Ttaiwl/chronopass/internal/application/access/usecases"
)

// Service interface for AccessHandler, satisfied by the engine service
// facade.

type accessService interface {
	GetSubscription(ctx context.Context, tokenID uint64) (*usecases.GetSubscriptionResult, error)
	HasFeature(ctx context.Context, tokenID uint64, featureKey string) (bool, error)
	VerifyOwnership(ctx context.Context, tokenID uint64, expectedOwner string) (bool, error)
	VerifyAccess(ctx context.Context, tokenID uint64, featureKey string) (*usecases.VerifyAccessResult, error)
}
