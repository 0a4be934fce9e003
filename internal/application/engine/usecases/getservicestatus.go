package usecases

import (
	"context"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/domain/engine"
)

type ServiceStatusResult struct {
	ServiceEnabled bool
	TokenCounter   uint64
}

type GetServiceStatusUseCase struct {
	stateRepo engine.StateRepository
}

func NewGetServiceStatusUseCase(stateRepo engine.StateRepository) *GetServiceStatusUseCase {
	return &GetServiceStatusUseCase{stateRepo: stateRepo}
}

func (uc *GetServiceStatusUseCase) Execute(ctx context.Context) (*ServiceStatusResult, error) {
	state, err := uc.stateRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load engine state: %w", err)
	}
	if state == nil {
		// Fresh deployment: nothing persisted yet.
		state = engine.NewState()
	}

	return &ServiceStatusResult{
		ServiceEnabled: state.ServiceEnabled(),
		TokenCounter:   state.TokenCounter(),
	}, nil
}
