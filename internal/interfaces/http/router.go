package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Ttaiwl/chronopass/internal/interfaces/http/middleware"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/healthz", c.adminHandler.HealthCheck)

	v1 := c.engine.Group("/api/v1")
	v1.Use(c.principalMiddleware.RequirePrincipal())
	{
		tiers := v1.Group("/tiers")
		{
			tiers.POST("", c.tierHandler.ConfigureTier)
			tiers.GET("", c.tierHandler.ListTiers)
			tiers.GET("/:id", c.tierHandler.GetTier)
		}

		subs := v1.Group("/subscriptions")
		{
			subs.POST("", c.subscriptionHandler.Mint)
			subs.POST("/:id/renew", c.subscriptionHandler.Renew)
			subs.POST("/:id/auto-renew", c.subscriptionHandler.ToggleAutoRenew)
			subs.POST("/:id/transfer", c.subscriptionHandler.Transfer)
			subs.POST("/:id/transfer-legacy", c.subscriptionHandler.TransferLegacy)

			subs.GET("/:id", c.accessHandler.GetSubscription)
			subs.GET("/:id/features/:key", c.accessHandler.HasFeature)
			subs.GET("/:id/ownership", c.accessHandler.VerifyOwnership)
			subs.GET("/:id/access/:key", c.accessHandler.VerifyAccess)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/service/toggle", c.adminHandler.ToggleService)
			admin.GET("/service", c.adminHandler.GetServiceStatus)
			admin.POST("/chain/height", c.adminHandler.SetChainHeight)
		}
	}
}

// GetEngine returns the Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}
