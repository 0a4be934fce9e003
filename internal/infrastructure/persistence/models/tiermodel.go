package models

import (
	"time"

	"github.com/Ttaiwl/chronopass/internal/shared/constants"
)

// TierModel represents the database persistence model for tier configurations.
// This is the anti-corruption layer between domain and database.
type TierModel struct {
	ID           uint64 `gorm:"primarykey;autoIncrement:false"`
	Price        uint64 `gorm:"not null"`
	DurationDays uint32 `gorm:"not null"`
	MaxRenewals  uint32 `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (TierModel) TableName() string {
	return constants.TableTiers
}
