package usecases

import (
	"context"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/domain/engine"
	"github.com/Ttaiwl/chronopass/internal/domain/tier"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

type ConfigureTierCommand struct {
	TierID       uint64
	Price        uint64
	DurationDays uint32
	MaxRenewals  uint32
	Caller       string
}

type ConfigureTierResult struct {
	TierID uint64
}

// ConfigureTierUseCase inserts or replaces a tier record wholesale. Only the
// deployment administrator may call it. Redefining a tier never touches
// existing subscriptions; they pick up the new price and duration at their
// next renewal.
type ConfigureTierUseCase struct {
	tierRepo       tier.Repository
	adminPrincipal string
	logger         logger.Interface
}

func NewConfigureTierUseCase(
	tierRepo tier.Repository,
	adminPrincipal string,
	logger logger.Interface,
) *ConfigureTierUseCase {
	return &ConfigureTierUseCase{
		tierRepo:       tierRepo,
		adminPrincipal: adminPrincipal,
		logger:         logger,
	}
}

func (uc *ConfigureTierUseCase) Execute(ctx context.Context, cmd ConfigureTierCommand) (*ConfigureTierResult, error) {
	if cmd.Caller != uc.adminPrincipal {
		uc.logger.Warnw("tier configuration rejected", "caller", cmd.Caller, "tier_id", cmd.TierID)
		return nil, engine.ErrNotAdministrator
	}

	t, err := tier.NewTier(cmd.TierID, cmd.Price, cmd.DurationDays, cmd.MaxRenewals)
	if err != nil {
		return nil, err
	}

	if err := uc.tierRepo.Upsert(ctx, t); err != nil {
		uc.logger.Errorw("failed to store tier", "error", err, "tier_id", cmd.TierID)
		return nil, fmt.Errorf("failed to store tier: %w", err)
	}

	uc.logger.Infow("tier configured",
		"tier_id", cmd.TierID,
		"price", cmd.Price,
		"duration_days", cmd.DurationDays,
		"max_renewals", cmd.MaxRenewals)

	return &ConfigureTierResult{TierID: t.ID()}, nil
}
