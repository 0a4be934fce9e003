package http

import (
	accessUC "github.com/Ttaiwl/chronopass/internal/application/access/usecases"
	engineApp "github.com/Ttaiwl/chronopass/internal/application/engine"
	engineUC "github.com/Ttaiwl/chronopass/internal/application/engine/usecases"
	subscriptionUC "github.com/Ttaiwl/chronopass/internal/application/subscription/usecases"
	tierUC "github.com/Ttaiwl/chronopass/internal/application/tier/usecases"
)

func (c *Container) initEngineService() {
	admin := c.cfg.Engine.AdminPrincipal

	c.engineService = engineApp.NewService(engineApp.ServiceParams{
		ConfigureTier: tierUC.NewConfigureTierUseCase(c.tierRepo, admin, c.log),
		GetTier:       tierUC.NewGetTierUseCase(c.tierRepo),
		ListTiers:     tierUC.NewListTiersUseCase(c.tierRepo),
		MintPass: subscriptionUC.NewMintPassUseCase(
			c.stateRepo,
			c.tierRepo,
			c.subscriptionRepo,
			c.ownershipRepo,
			c.ledgerSvc,
			c.clock,
			c.txManager,
			admin,
			c.cfg.Engine.DefaultFeatures,
			c.log,
		),
		RenewPass: subscriptionUC.NewRenewPassUseCase(
			c.stateRepo,
			c.tierRepo,
			c.subscriptionRepo,
			c.ledgerSvc,
			c.clock,
			c.txManager,
			admin,
			c.log,
		),
		ToggleAutoRenew: subscriptionUC.NewToggleAutoRenewUseCase(c.subscriptionRepo, c.log),
		TransferPass: subscriptionUC.NewTransferPassUseCase(
			c.subscriptionRepo,
			c.ownershipRepo,
			c.clock,
			c.txManager,
			c.log,
		),
		ToggleService:   engineUC.NewToggleServiceUseCase(c.stateRepo, admin, c.log),
		ServiceStatus:   engineUC.NewGetServiceStatusUseCase(c.stateRepo),
		GetSubscription: accessUC.NewGetSubscriptionUseCase(c.subscriptionRepo, c.cache, c.clock),
		HasFeature:      accessUC.NewHasFeatureUseCase(c.subscriptionRepo, c.cache, c.clock),
		VerifyOwnership: accessUC.NewVerifyOwnershipUseCase(c.subscriptionRepo, c.cache),
		VerifyAccess:    accessUC.NewVerifyAccessUseCase(c.subscriptionRepo, c.cache, c.clock),
		Cache:           c.cache,
		Logger:          c.log,
	})
}
