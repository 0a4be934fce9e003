package token

import "context"

// Repository persists the token ownership registry. GetByTokenID returns
// (nil, nil) for tokens that were never minted.
type Repository interface {
	Create(ctx context.Context, o *Ownership) error
	GetByTokenID(ctx context.Context, tokenID uint64) (*Ownership, error)
	Update(ctx context.Context, o *Ownership) error
}
