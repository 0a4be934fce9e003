package models

import (
	"time"

	"github.com/Ttaiwl/chronopass/internal/shared/constants"
)

// EngineStateID is the fixed primary key of the singleton engine state row.
const EngineStateID uint32 = 1

// EngineStateModel persists the token counter and the service gate.
type EngineStateModel struct {
	ID             uint32 `gorm:"primarykey;autoIncrement:false"`
	TokenCounter   uint64 `gorm:"not null;default:0"`
	ServiceEnabled bool   `gorm:"not null;default:true"`
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (EngineStateModel) TableName() string {
	return constants.TableEngineState
}
