package usecases

import (
	"context"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/domain/tier"
)

type ListTiersUseCase struct {
	tierRepo tier.Repository
}

func NewListTiersUseCase(tierRepo tier.Repository) *ListTiersUseCase {
	return &ListTiersUseCase{tierRepo: tierRepo}
}

func (uc *ListTiersUseCase) Execute(ctx context.Context) ([]*tier.Tier, error) {
	tiers, err := uc.tierRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tiers: %w", err)
	}
	return tiers, nil
}
