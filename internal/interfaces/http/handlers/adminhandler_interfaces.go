package handlers

import (
	"context"

	"github.com/Ttaiwl/chronopass/internal/application/engine/usecases"
)

// Service interfaces for AdminHandler.

type adminService interface {
	ToggleService(ctx context.Context, cmd usecases.ToggleServiceCommand) (*usecases.ToggleServiceResult, error)
	ServiceStatus(ctx context.Context) (*usecases.ServiceStatusResult, error)
}

// heightSetter is implemented by the manual chain clock. It is nil when the
// deployment runs on the interval clock.
type heightSetter interface {
	SetHeight(height uint64) error
}
