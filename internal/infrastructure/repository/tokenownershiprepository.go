package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Ttaiwl/chronopass/internal/domain/token"
	"github.com/Ttaiwl/chronopass/internal/infrastructure/persistence/models"
	"github.com/Ttaiwl/chronopass/internal/shared/db"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

type TokenOwnershipRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTokenOwnershipRepository(gormDB *gorm.DB, logger logger.Interface) token.Repository {
	return &TokenOwnershipRepositoryImpl{
		db:     gormDB,
		logger: logger,
	}
}

func (r *TokenOwnershipRepositoryImpl) Create(ctx context.Context, o *token.Ownership) error {
	model := r.toModel(o)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to record token ownership", "error", err, "token_id", o.TokenID())
		return fmt.Errorf("failed to record token ownership: %w", err)
	}

	return nil
}

func (r *TokenOwnershipRepositoryImpl) GetByTokenID(ctx context.Context, tokenID uint64) (*token.Ownership, error) {
	var model models.TokenOwnershipModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, "token_id = ?", tokenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get token ownership", "error", err, "token_id", tokenID)
		return nil, fmt.Errorf("failed to get token ownership: %w", err)
	}

	return r.toEntity(&model), nil
}

func (r *TokenOwnershipRepositoryImpl) Update(ctx context.Context, o *token.Ownership) error {
	model := r.toModel(o)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TokenOwnershipModel{}).
		Where("token_id = ?", o.TokenID()).
		Updates(map[string]interface{}{
			"holder":     model.Holder,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update token ownership", "error", result.Error, "token_id", o.TokenID())
		return fmt.Errorf("failed to update token ownership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return token.ErrTokenNotFound
	}

	return nil
}

func (r *TokenOwnershipRepositoryImpl) toModel(o *token.Ownership) *models.TokenOwnershipModel {
	return &models.TokenOwnershipModel{
		TokenID:   o.TokenID(),
		Holder:    o.Holder(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func (r *TokenOwnershipRepositoryImpl) toEntity(m *models.TokenOwnershipModel) *token.Ownership {
	return token.ReconstructOwnership(m.TokenID, m.Holder, m.CreatedAt, m.UpdatedAt)
}
