package usecases

import (
	"context"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/domain/tier"
)

type GetTierQuery struct {
	TierID uint64
}

type GetTierUseCase struct {
	tierRepo tier.Repository
}

func NewGetTierUseCase(tierRepo tier.Repository) *GetTierUseCase {
	return &GetTierUseCase{tierRepo: tierRepo}
}

func (uc *GetTierUseCase) Execute(ctx context.Context, q GetTierQuery) (*tier.Tier, error) {
	t, err := uc.tierRepo.GetByID(ctx, q.TierID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tier: %w", err)
	}
	if t == nil {
		return nil, tier.ErrTierNotFound
	}
	return t, nil
}
