package models

import (
	"time"

	"github.com/Ttaiwl/chronopass/internal/shared/constants"
)

// TokenOwnershipModel represents the database persistence model for the
// token ownership registry.
type TokenOwnershipModel struct {
	TokenID   uint64 `gorm:"primarykey;autoIncrement:false"`
	Holder    string `gorm:"not null;size:128;index:idx_ownership_holder"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (TokenOwnershipModel) TableName() string {
	return constants.TableTokenOwnerships
}
