package tier

import (
	"time"

	"github.com/Ttaiwl/chronopass/internal/shared/constants"
)

// Tier is a pricing configuration subscriptions reference by id. A tier is
// replaced wholesale on every configure; fields are never updated in place.
type Tier struct {
	id           uint64
	price        uint64
	durationDays uint32
	maxRenewals  uint32
	createdAt    time.Time
	updatedAt    time.Time
}

// NewTier creates a validated tier. Bounds follow the deployment constants;
// any violation yields ErrInvalidTierConfig.
func NewTier(id, price uint64, durationDays, maxRenewals uint32) (*Tier, error) {
	if id == 0 {
		return nil, ErrInvalidID(id)
	}
	if price > constants.MaxTierPrice {
		return nil, ErrPriceOutOfRange(price)
	}
	if durationDays < constants.MinDurationDays || durationDays > constants.MaxDurationDays {
		return nil, ErrDurationOutOfRange(durationDays)
	}
	if maxRenewals > constants.MaxRenewalsCap {
		return nil, ErrMaxRenewalsOutOfRange(maxRenewals)
	}

	now := time.Now().UTC()
	return &Tier{
		id:           id,
		price:        price,
		durationDays: durationDays,
		maxRenewals:  maxRenewals,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructTier rebuilds a tier from persistence without re-validation.
func ReconstructTier(id, price uint64, durationDays, maxRenewals uint32, createdAt, updatedAt time.Time) *Tier {
	return &Tier{
		id:           id,
		price:        price,
		durationDays: durationDays,
		maxRenewals:  maxRenewals,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the tier identifier
func (t *Tier) ID() uint64 {
	return t.id
}

// Price returns the tier price in atomic ledger units
func (t *Tier) Price() uint64 {
	return t.price
}

// DurationDays returns the validity duration in days
func (t *Tier) DurationDays() uint32 {
	return t.durationDays
}

// DurationBlocks returns the validity duration as a block-height delta.
func (t *Tier) DurationBlocks() uint64 {
	return uint64(t.durationDays) * constants.BlocksPerDay
}

// MaxRenewals returns the renewal cap; zero means unlimited.
func (t *Tier) MaxRenewals() uint32 {
	return t.maxRenewals
}

// CreatedAt returns the creation timestamp
func (t *Tier) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns the last update timestamp
func (t *Tier) UpdatedAt() time.Time {
	return t.updatedAt
}
