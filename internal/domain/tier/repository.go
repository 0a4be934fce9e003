package tier

import "context"

// Repository persists tier configurations. Implementations return (nil, nil)
// when a tier does not exist; translating absence into an error is left to
// the use cases.
type Repository interface {
	// Upsert inserts or replaces the whole tier record.
	Upsert(ctx context.Context, t *Tier) error

	// GetByID returns the tier or nil when absent.
	GetByID(ctx context.Context, id uint64) (*Tier, error)

	// List returns all configured tiers ordered by id.
	List(ctx context.Context) ([]*Tier, error)
}
