package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accessUC "github.com/Ttaiwl/chronopass/internal/application/access/usecases"
	engineApp "github.com/Ttaiwl/chronopass/internal/application/engine"
	"github.com/Ttaiwl/chronopass/internal/domain/chain"
	"github.com/Ttaiwl/chronopass/internal/domain/engine"
	"github.com/Ttaiwl/chronopass/internal/domain/ledger"
	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
	"github.com/Ttaiwl/chronopass/internal/domain/tier"
	"github.com/Ttaiwl/chronopass/internal/domain/token"
	infraCache "github.com/Ttaiwl/chronopass/internal/infrastructure/cache"
	infraChain "github.com/Ttaiwl/chronopass/internal/infrastructure/chain"
	"github.com/Ttaiwl/chronopass/internal/infrastructure/config"
	infraLedger "github.com/Ttaiwl/chronopass/internal/infrastructure/ledger"
	"github.com/Ttaiwl/chronopass/internal/interfaces/http/handlers"
	"github.com/Ttaiwl/chronopass/internal/interfaces/http/middleware"
	"github.com/Ttaiwl/chronopass/internal/shared/db"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

// Container wires infrastructure, repositories, use cases and handlers, and
// owns the pieces that need explicit shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Infrastructure
	txManager   *db.TransactionManager
	clock       chain.Clock
	manualClock *infraChain.ManualClock
	ledgerSvc   ledger.Service
	cache       accessUC.SnapshotCache

	// Repositories
	tierRepo         tier.Repository
	subscriptionRepo subscription.Repository
	ownershipRepo    token.Repository
	stateRepo        engine.StateRepository

	// Engine facade
	engineService *engineApp.Service

	// Handlers and middleware
	tierHandler         *handlers.TierHandler
	subscriptionHandler *handlers.SubscriptionHandler
	accessHandler       *handlers.AccessHandler
	adminHandler        *handlers.AdminHandler
	principalMiddleware *middleware.PrincipalMiddleware
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gormDB,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initEngineService()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.txManager = db.NewTransactionManager(c.db)

	switch c.cfg.Chain.Mode {
	case "interval":
		clock, err := infraChain.NewIntervalClock(c.cfg.Chain.GenesisUnix, c.cfg.Chain.SecondsPerBlock)
		if err != nil {
			return err
		}
		c.clock = clock
	default:
		manual := infraChain.NewManualClock(c.cfg.Chain.InitialHeight, c.log)
		c.manualClock = manual
		c.clock = manual
	}

	c.ledgerSvc = infraLedger.NewMemoryLedger(c.cfg.Ledger.Seed, c.log)

	if c.cfg.Redis.Enabled {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.Addr,
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		ttl := time.Duration(c.cfg.Redis.TTLSeconds) * time.Second
		c.cache = infraCache.NewRedisSnapshotCache(c.redis, ttl, c.log)
	}

	return nil
}

// Shutdown releases resources owned by the container.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}

// EngineService exposes the facade for the CLI layer and tests.
func (c *Container) EngineService() *engineApp.Service {
	return c.engineService
}
