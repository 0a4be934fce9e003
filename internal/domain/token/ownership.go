// Package token owns the transferable-asset layer: the registry mapping each
// token id to its current holder. The subscription record's owner field and
// this registry are maintained in lock-step by every mutating operation; the
// pairing is the engine's core consistency invariant.
package token

import "time"

// Ownership records the current holder of one token.
type Ownership struct {
	tokenID   uint64
	holder    string
	createdAt time.Time
	updatedAt time.Time
}

// NewOwnership records a freshly minted token for its first holder.
func NewOwnership(tokenID uint64, holder string) (*Ownership, error) {
	if tokenID == 0 {
		return nil, ErrInvalidTokenID
	}
	if holder == "" {
		return nil, ErrHolderRequired
	}

	now := time.Now().UTC()
	return &Ownership{
		tokenID:   tokenID,
		holder:    holder,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructOwnership rebuilds an ownership record from persistence.
func ReconstructOwnership(tokenID uint64, holder string, createdAt, updatedAt time.Time) *Ownership {
	return &Ownership{
		tokenID:   tokenID,
		holder:    holder,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// TokenID returns the token identifier
func (o *Ownership) TokenID() uint64 {
	return o.tokenID
}

// Holder returns the current holder principal
func (o *Ownership) Holder() string {
	return o.holder
}

// CreatedAt returns the mint timestamp
func (o *Ownership) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last reassignment timestamp
func (o *Ownership) UpdatedAt() time.Time {
	return o.updatedAt
}

// ReassignTo hands the token to a new holder.
func (o *Ownership) ReassignTo(holder string) error {
	if holder == "" {
		return ErrHolderRequired
	}
	o.holder = holder
	o.updatedAt = time.Now().UTC()
	return nil
}
