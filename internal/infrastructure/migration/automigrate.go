package migration

import (
	"github.com/Ttaiwl/chronopass/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TierModel{},
		&models.SubscriptionModel{},
		&models.TokenOwnershipModel{},
		&models.EngineStateModel{},
	}
}
