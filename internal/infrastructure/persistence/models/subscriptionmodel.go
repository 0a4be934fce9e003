package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/Ttaiwl/chronopass/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for passes.
// The token id is assigned by the engine counter, never by the database.
type SubscriptionModel struct {
	TokenID     uint64 `gorm:"primarykey;autoIncrement:false"`
	Owner       string `gorm:"not null;size:128;index:idx_subscription_owner"`
	StartHeight uint64 `gorm:"not null"`
	EndHeight   uint64 `gorm:"not null;index:idx_subscription_end_height"`
	TierID      uint64 `gorm:"not null;index:idx_subscription_tier"`
	AutoRenew   bool   `gorm:"not null;default:false"`
	Features    datatypes.JSON
	Renewals    uint32 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
