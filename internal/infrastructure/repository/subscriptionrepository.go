package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
	"github.com/Ttaiwl/chronopass/internal/infrastructure/persistence/models"
	"github.com/Ttaiwl/chronopass/internal/shared/db"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionRepository(gormDB *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     gormDB,
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.toModel(sub)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "error", err, "token_id", sub.TokenID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) GetByTokenID(ctx context.Context, tokenID uint64) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, "token_id = ?", tokenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription", "error", err, "token_id", tokenID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.toEntity(&model)
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.toModel(sub)
	if err != nil {
		return err
	}

	// Full-record write: field-level merges would reintroduce the partial
	// update visibility the aggregate exists to prevent.
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("token_id = ?", sub.TokenID()).
		Updates(map[string]interface{}{
			"owner":        model.Owner,
			"start_height": model.StartHeight,
			"end_height":   model.EndHeight,
			"tier_id":      model.TierID,
			"auto_renew":   model.AutoRenew,
			"features":     model.Features,
			"renewals":     model.Renewals,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "error", result.Error, "token_id", sub.TokenID())
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrSubscriptionNotFound
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) ListByOwner(ctx context.Context, owner string) ([]*subscription.Subscription, error) {
	var rows []models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).Where("owner = ?", owner).Order("token_id").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions by owner", "error", err, "owner", owner)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subs := make([]*subscription.Subscription, 0, len(rows))
	for i := range rows {
		sub, err := r.toEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (r *SubscriptionRepositoryImpl) toModel(sub *subscription.Subscription) (*models.SubscriptionModel, error) {
	var features []byte
	if fs := sub.Features(); len(fs) > 0 {
		var err error
		features, err = json.Marshal(fs)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal features: %w", err)
		}
	}

	return &models.SubscriptionModel{
		TokenID:     sub.TokenID(),
		Owner:       sub.Owner(),
		StartHeight: sub.StartHeight(),
		EndHeight:   sub.EndHeight(),
		TierID:      sub.TierID(),
		AutoRenew:   sub.AutoRenew(),
		Features:    features,
		Renewals:    sub.Renewals(),
		CreatedAt:   sub.CreatedAt(),
		UpdatedAt:   sub.UpdatedAt(),
	}, nil
}

func (r *SubscriptionRepositoryImpl) toEntity(m *models.SubscriptionModel) (*subscription.Subscription, error) {
	var features []string
	if len(m.Features) > 0 {
		if err := json.Unmarshal(m.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal features: %w", err)
		}
	}

	return subscription.ReconstructSubscription(subscription.SubscriptionReconstructParams{
		TokenID:     m.TokenID,
		Owner:       m.Owner,
		StartHeight: m.StartHeight,
		EndHeight:   m.EndHeight,
		TierID:      m.TierID,
		AutoRenew:   m.AutoRenew,
		Features:    features,
		Renewals:    m.Renewals,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	})
}
