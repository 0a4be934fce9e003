package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ttaiwl/chronopass/internal/domain/tier"
	"github.com/Ttaiwl/chronopass/internal/infrastructure/persistence/models"
	"github.com/Ttaiwl/chronopass/internal/shared/db"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

type TierRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTierRepository(gormDB *gorm.DB, logger logger.Interface) tier.Repository {
	return &TierRepositoryImpl{
		db:     gormDB,
		logger: logger,
	}
}

func (r *TierRepositoryImpl) Upsert(ctx context.Context, t *tier.Tier) error {
	model := r.toModel(t)

	// Whole-record replace: a redefined tier never keeps stale fields.
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert tier", "error", err, "tier_id", t.ID())
		return fmt.Errorf("failed to upsert tier: %w", err)
	}

	return nil
}

func (r *TierRepositoryImpl) GetByID(ctx context.Context, id uint64) (*tier.Tier, error) {
	var model models.TierModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get tier by ID", "error", err, "tier_id", id)
		return nil, fmt.Errorf("failed to get tier: %w", err)
	}

	return r.toEntity(&model), nil
}

func (r *TierRepositoryImpl) List(ctx context.Context) ([]*tier.Tier, error) {
	var rows []models.TierModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list tiers", "error", err)
		return nil, fmt.Errorf("failed to list tiers: %w", err)
	}

	tiers := make([]*tier.Tier, 0, len(rows))
	for i := range rows {
		tiers = append(tiers, r.toEntity(&rows[i]))
	}
	return tiers, nil
}

func (r *TierRepositoryImpl) toModel(t *tier.Tier) *models.TierModel {
	return &models.TierModel{
		ID:           t.ID(),
		Price:        t.Price(),
		DurationDays: t.DurationDays(),
		MaxRenewals:  t.MaxRenewals(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func (r *TierRepositoryImpl) toEntity(m *models.TierModel) *tier.Tier {
	return tier.ReconstructTier(m.ID, m.Price, m.DurationDays, m.MaxRenewals, m.CreatedAt, m.UpdatedAt)
}
