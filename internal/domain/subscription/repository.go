package subscription

import "context"

// Repository persists subscription records. GetByTokenID returns (nil, nil)
// when the token was never minted.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByTokenID(ctx context.Context, tokenID uint64) (*Subscription, error)
	Update(ctx context.Context, sub *Subscription) error
	ListByOwner(ctx context.Context, owner string) ([]*Subscription, error)
}
