package usecases

import (
	"context"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/domain/engine"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

type ToggleServiceCommand struct {
	Caller string
}

type ToggleServiceResult struct {
	ServiceEnabled bool
}

// ToggleServiceUseCase flips the global service gate. While disabled, mint
// and renew are rejected; transfer, auto-renewal toggling and all reads stay
// available.
type ToggleServiceUseCase struct {
	stateRepo      engine.StateRepository
	adminPrincipal string
	logger         logger.Interface
}

func NewToggleServiceUseCase(
	stateRepo engine.StateRepository,
	adminPrincipal string,
	logger logger.Interface,
) *ToggleServiceUseCase {
	return &ToggleServiceUseCase{
		stateRepo:      stateRepo,
		adminPrincipal: adminPrincipal,
		logger:         logger,
	}
}

func (uc *ToggleServiceUseCase) Execute(ctx context.Context, cmd ToggleServiceCommand) (*ToggleServiceResult, error) {
	if cmd.Caller != uc.adminPrincipal {
		uc.logger.Warnw("service toggle rejected", "caller", cmd.Caller)
		return nil, engine.ErrNotAdministrator
	}

	state, err := uc.stateRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load engine state: %w", err)
	}
	if state == nil {
		state = engine.NewState()
	}

	enabled := state.ToggleService()

	if err := uc.stateRepo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save engine state: %w", err)
	}

	uc.logger.Infow("service gate toggled", "service_enabled", enabled)

	return &ToggleServiceResult{ServiceEnabled: enabled}, nil
}
