// Package engine exposes the subscription engine as one coordinating handle.
// The host-ledger execution model the engine was specified against applies
// every mutation in a strict total order; Service re-establishes that with a
// single writer lock, so each mutating operation observes the committed
// state of all previous ones and commits atomically or not at all.
package engine

import (
	"context"
	"sync"

	accessUC "github.com/Ttaiwl/chronopass/internal/application/access/usecases"
	engineUC "github.com/Ttaiwl/chronopass/internal/application/engine/usecases"
	subscriptionUC "github.com/Ttaiwl/chronopass/internal/application/subscription/usecases"
	tierUC "github.com/Ttaiwl/chronopass/internal/application/tier/usecases"
	"github.com/Ttaiwl/chronopass/internal/domain/tier"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

// ServiceParams bundles the use cases composed into the engine facade.
type ServiceParams struct {
	ConfigureTier   *tierUC.ConfigureTierUseCase
	GetTier         *tierUC.GetTierUseCase
	ListTiers       *tierUC.ListTiersUseCase
	MintPass        *subscriptionUC.MintPassUseCase
	RenewPass       *subscriptionUC.RenewPassUseCase
	ToggleAutoRenew *subscriptionUC.ToggleAutoRenewUseCase
	TransferPass    *subscriptionUC.TransferPassUseCase
	ToggleService   *engineUC.ToggleServiceUseCase
	ServiceStatus   *engineUC.GetServiceStatusUseCase
	GetSubscription *accessUC.GetSubscriptionUseCase
	HasFeature      *accessUC.HasFeatureUseCase
	VerifyOwnership *accessUC.VerifyOwnershipUseCase
	VerifyAccess    *accessUC.VerifyAccessUseCase
	Cache           accessUC.SnapshotCache
	Logger          logger.Interface
}

type Service struct {
	mu sync.Mutex
	p  ServiceParams
}

func NewService(p ServiceParams) *Service {
	return &Service{p: p}
}

// ConfigureTier replaces a tier wholesale (admin only).
func (s *Service) ConfigureTier(ctx context.Context, cmd tierUC.ConfigureTierCommand) (*tierUC.ConfigureTierResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.ConfigureTier.Execute(ctx, cmd)
}

func (s *Service) GetTier(ctx context.Context, tierID uint64) (*tier.Tier, error) {
	return s.p.GetTier.Execute(ctx, tierUC.GetTierQuery{TierID: tierID})
}

func (s *Service) ListTiers(ctx context.Context) ([]*tier.Tier, error) {
	return s.p.ListTiers.Execute(ctx)
}

// Mint issues a new pass to the caller.
func (s *Service) Mint(ctx context.Context, cmd subscriptionUC.MintPassCommand) (*subscriptionUC.MintPassResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.MintPass.Execute(ctx, cmd)
}

// Renew extends a still-valid pass at the current tier terms.
func (s *Service) Renew(ctx context.Context, cmd subscriptionUC.RenewPassCommand) (*subscriptionUC.RenewPassResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.p.RenewPass.Execute(ctx, cmd)
	if err == nil {
		s.invalidate(ctx, cmd.TokenID)
	}
	return result, err
}

// ToggleAutoRenew flips the auto-renewal flag (owner only).
func (s *Service) ToggleAutoRenew(ctx context.Context, cmd subscriptionUC.ToggleAutoRenewCommand) (*subscriptionUC.ToggleAutoRenewResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.p.ToggleAutoRenew.Execute(ctx, cmd)
	if err == nil {
		s.invalidate(ctx, cmd.TokenID)
	}
	return result, err
}

// Transfer hands a pass to a new owner.
func (s *Service) Transfer(ctx context.Context, cmd subscriptionUC.TransferPassCommand) (*subscriptionUC.TransferPassResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.p.TransferPass.Execute(ctx, cmd)
	if err == nil {
		s.invalidate(ctx, cmd.TokenID)
	}
	return result, err
}

// TransferLegacy keeps the historical entry point: identical contract with
// the feature list always cleared for the recipient.
func (s *Service) TransferLegacy(ctx context.Context, cmd subscriptionUC.TransferPassCommand) (*subscriptionUC.TransferPassResult, error) {
	cmd.WithFeatures = false
	return s.Transfer(ctx, cmd)
}

// ToggleService flips the global service gate (admin only).
func (s *Service) ToggleService(ctx context.Context, cmd engineUC.ToggleServiceCommand) (*engineUC.ToggleServiceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.ToggleService.Execute(ctx, cmd)
}

func (s *Service) ServiceStatus(ctx context.Context) (*engineUC.ServiceStatusResult, error) {
	return s.p.ServiceStatus.Execute(ctx)
}

func (s *Service) GetSubscription(ctx context.Context, tokenID uint64) (*accessUC.GetSubscriptionResult, error) {
	return s.p.GetSubscription.Execute(ctx, accessUC.GetSubscriptionQuery{TokenID: tokenID})
}

func (s *Service) HasFeature(ctx context.Context, tokenID uint64, featureKey string) (bool, error) {
	return s.p.HasFeature.Execute(ctx, accessUC.HasFeatureQuery{TokenID: tokenID, FeatureKey: featureKey})
}

func (s *Service) VerifyOwnership(ctx context.Context, tokenID uint64, expectedOwner string) (bool, error) {
	return s.p.VerifyOwnership.Execute(ctx, accessUC.VerifyOwnershipQuery{TokenID: tokenID, ExpectedOwner: expectedOwner})
}

func (s *Service) VerifyAccess(ctx context.Context, tokenID uint64, featureKey string) (*accessUC.VerifyAccessResult, error) {
	return s.p.VerifyAccess.Execute(ctx, accessUC.VerifyAccessQuery{TokenID: tokenID, FeatureKey: featureKey})
}

func (s *Service) invalidate(ctx context.Context, tokenID uint64) {
	if s.p.Cache != nil {
		s.p.Cache.Invalidate(ctx, tokenID)
	}
}
