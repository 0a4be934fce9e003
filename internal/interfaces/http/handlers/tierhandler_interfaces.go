package handlers

import (
	"context"

	"github.com/Ttaiwl/chronopass/internal/application/tier/usecases"
	"github.com/Ttaiwl/chronopass/internal/domain/tier"
)

// Service interface for TierHandler, satisfied by the engine service facade.

type tierService interface {
	ConfigureTier(ctx context.Context, cmd usecases.ConfigureTierCommand) (*usecases.ConfigureTierResult, error)
	GetTier(ctx context.Context, tierID uint64) (*tier.Tier, error)
	ListTiers(ctx context.Context) ([]*tier.Tier, error)
}
