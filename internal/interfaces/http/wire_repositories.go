package http

import (
	"github.com/Ttaiwl/chronopass/internal/infrastructure/repository"
)

func (c *Container) initRepositories() {
	c.tierRepo = repository.NewTierRepository(c.db, c.log)
	c.subscriptionRepo = repository.NewSubscriptionRepository(c.db, c.log)
	c.ownershipRepo = repository.NewTokenOwnershipRepository(c.db, c.log)
	c.stateRepo = repository.NewEngineStateRepository(c.db, c.log)
}
