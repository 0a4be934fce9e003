package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ttaiwl/chronopass/internal/domain/engine"
	"github.com/Ttaiwl/chronopass/internal/infrastructure/persistence/models"
	"github.com/Ttaiwl/chronopass/internal/shared/db"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

type EngineStateRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewEngineStateRepository(gormDB *gorm.DB, logger logger.Interface) engine.StateRepository {
	return &EngineStateRepositoryImpl{
		db:     gormDB,
		logger: logger,
	}
}

func (r *EngineStateRepositoryImpl) Get(ctx context.Context) (*engine.State, error) {
	var model models.EngineStateModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, "id = ?", models.EngineStateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get engine state", "error", err)
		return nil, fmt.Errorf("failed to get engine state: %w", err)
	}

	return engine.ReconstructState(model.TokenCounter, model.ServiceEnabled, model.UpdatedAt), nil
}

func (r *EngineStateRepositoryImpl) Save(ctx context.Context, s *engine.State) error {
	model := &models.EngineStateModel{
		ID:             models.EngineStateID,
		TokenCounter:   s.TokenCounter(),
		ServiceEnabled: s.ServiceEnabled(),
		UpdatedAt:      s.UpdatedAt(),
	}

	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to save engine state", "error", err)
		return fmt.Errorf("failed to save engine state: %w", err)
	}

	return nil
}
