package http

import (
	"github.com/Ttaiwl/chronopass/internal/interfaces/http/handlers"
	"github.com/Ttaiwl/chronopass/internal/interfaces/http/middleware"
)

func (c *Container) initHandlers() {
	c.tierHandler = handlers.NewTierHandler(c.engineService)
	c.subscriptionHandler = handlers.NewSubscriptionHandler(c.engineService)
	c.accessHandler = handlers.NewAccessHandler(c.engineService)

	// The manual clock doubles as the height setter; the interval clock
	// leaves it nil and the endpoint rejects writes.
	var setter interface{ SetHeight(uint64) error }
	if c.manualClock != nil {
		setter = c.manualClock
	}
	c.adminHandler = handlers.NewAdminHandler(c.engineService, c.clock, setter, c.cfg.Engine.AdminPrincipal)

	c.principalMiddleware = middleware.NewPrincipalMiddleware(&c.cfg.Auth, c.log)
}
