package usecases

import "context"

// SubscriptionSnapshot is the cached read-side projection of one pass. The
// activity predicate is recomputed against the current height on every read,
// so a cached snapshot only goes stale on mutation, which invalidates it.
type SubscriptionSnapshot struct {
	TokenID     uint64   `json:"token_id"`
	Owner       string   `json:"owner"`
	StartHeight uint64   `json:"start_height"`
	EndHeight   uint64   `json:"end_height"`
	TierID      uint64   `json:"tier_id"`
	AutoRenew   bool     `json:"auto_renew"`
	Features    []string `json:"features"`
	Renewals    uint32   `json:"renewals"`
}

// IsActiveAt reports whether the snapshot's window covers the height.
func (s *SubscriptionSnapshot) IsActiveAt(height uint64) bool {
	return height >= s.StartHeight && height <= s.EndHeight
}

// HasFeature reports membership in the snapshot's feature list.
func (s *SubscriptionSnapshot) HasFeature(key string) bool {
	for _, f := range s.Features {
		if f == key {
			return true
		}
	}
	return false
}

// SnapshotCache is an optional read-side cache for verification queries.
// Implementations must treat it as best-effort: a miss or a cache error only
// costs a repository read.
type SnapshotCache interface {
	Get(ctx context.Context, tokenID uint64) (*SubscriptionSnapshot, bool)
	Set(ctx context.Context, snap *SubscriptionSnapshot)
	Invalidate(ctx context.Context, tokenID uint64)
}
