package subscription

import (
	"time"

	"github.com/Ttaiwl/chronopass/internal/shared/constants"
)

// Subscription is the aggregate root for one access pass. Validity is a
// read-derived predicate over the stored window, never a stored state, and
// records are never deleted once minted.
type Subscription struct {
	tokenID     uint64
	owner       string
	startHeight uint64
	endHeight   uint64
	tierID      uint64
	autoRenew   bool
	features    []string
	renewals    uint32
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSubscription creates a subscription minted at the given height. The
// window is [now, now+durationBlocks]; auto-renew starts off and the renewal
// counter at zero.
func NewSubscription(tokenID uint64, owner string, tierID uint64, now, durationBlocks uint64, features []string) (*Subscription, error) {
	if tokenID == 0 {
		return nil, ErrInvalidTokenID
	}
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	if tierID == 0 {
		return nil, ErrTierRequired
	}
	if len(features) > constants.MaxFeatures {
		return nil, ErrTooManyFeatures
	}

	created := time.Now().UTC()
	return &Subscription{
		tokenID:     tokenID,
		owner:       owner,
		startHeight: now,
		endHeight:   now + durationBlocks,
		tierID:      tierID,
		autoRenew:   false,
		features:    copyFeatures(features),
		renewals:    0,
		createdAt:   created,
		updatedAt:   created,
	}, nil
}

// SubscriptionReconstructParams carries persisted state back into the aggregate.
type SubscriptionReconstructParams struct {
	TokenID     uint64
	Owner       string
	StartHeight uint64
	EndHeight   uint64
	TierID      uint64
	AutoRenew   bool
	Features    []string
	Renewals    uint32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(p SubscriptionReconstructParams) (*Subscription, error) {
	if p.TokenID == 0 {
		return nil, ErrInvalidTokenID
	}
	if p.Owner == "" {
		return nil, ErrOwnerRequired
	}
	if p.EndHeight < p.StartHeight {
		return nil, ErrInvalidWindow
	}

	return &Subscription{
		tokenID:     p.TokenID,
		owner:       p.Owner,
		startHeight: p.StartHeight,
		endHeight:   p.EndHeight,
		tierID:      p.TierID,
		autoRenew:   p.AutoRenew,
		features:    copyFeatures(p.Features),
		renewals:    p.Renewals,
		createdAt:   p.CreatedAt,
		updatedAt:   p.UpdatedAt,
	}, nil
}

// TokenID returns the token identifier
func (s *Subscription) TokenID() uint64 {
	return s.tokenID
}

// Owner returns the current holder principal
func (s *Subscription) Owner() string {
	return s.owner
}

// StartHeight returns the window start
func (s *Subscription) StartHeight() uint64 {
	return s.startHeight
}

// EndHeight returns the window end (inclusive)
func (s *Subscription) EndHeight() uint64 {
	return s.endHeight
}

// TierID returns the referenced tier
func (s *Subscription) TierID() uint64 {
	return s.tierID
}

// AutoRenew returns the auto-renewal flag
func (s *Subscription) AutoRenew() bool {
	return s.autoRenew
}

// Features returns a copy of the feature list
func (s *Subscription) Features() []string {
	return copyFeatures(s.features)
}

// Renewals returns the number of completed renewals
func (s *Subscription) Renewals() uint32 {
	return s.renewals
}

// CreatedAt returns the creation timestamp
func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the last update timestamp
func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsActiveAt reports whether the height falls inside the validity window.
func (s *Subscription) IsActiveAt(height uint64) bool {
	return height >= s.startHeight && height <= s.endHeight
}

// IsOwnedBy reports whether the principal is the current owner.
func (s *Subscription) IsOwnedBy(principal string) bool {
	return s.owner == principal
}

// HasFeature reports membership in the stored feature list. Activity is a
// separate predicate; callers compose the two.
func (s *Subscription) HasFeature(key string) bool {
	for _, f := range s.features {
		if f == key {
			return true
		}
	}
	return false
}

// Renew resets the window to [start, now+durationBlocks]. Renewal extends a
// still-valid pass, it never resurrects an expired one, and the new window is
// anchored at now rather than stacked onto remaining time. maxRenewals of
// zero means unlimited.
func (s *Subscription) Renew(now, durationBlocks uint64, maxRenewals uint32) error {
	if !s.IsActiveAt(now) {
		return ErrSubscriptionExpired
	}
	if maxRenewals > 0 && s.renewals >= maxRenewals {
		return ErrRenewalLimitReached
	}

	s.endHeight = now + durationBlocks
	s.renewals++
	s.updatedAt = time.Now().UTC()
	return nil
}

// ToggleAutoRenew flips the auto-renewal flag and returns the new value.
// Allowed regardless of the validity window.
func (s *Subscription) ToggleAutoRenew() bool {
	s.autoRenew = !s.autoRenew
	s.updatedAt = time.Now().UTC()
	return s.autoRenew
}

// TransferTo hands the pass to a new owner. The validity window is preserved
// unchanged; auto-renew always resets and the feature list is carried over
// only when withFeatures is set. Expired passes cannot change hands.
func (s *Subscription) TransferTo(recipient string, now uint64, withFeatures bool) error {
	if recipient == "" {
		return ErrOwnerRequired
	}
	if !s.IsActiveAt(now) {
		return ErrTransferExpired
	}

	s.owner = recipient
	s.autoRenew = false
	if !withFeatures {
		s.features = nil
	}
	s.updatedAt = time.Now().UTC()
	return nil
}

func copyFeatures(features []string) []string {
	if len(features) == 0 {
		return nil
	}
	out := make([]string, len(features))
	copy(out, features)
	return out
}
