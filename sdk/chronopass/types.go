// Package chronopass provides a Go SDK for relying services that verify
// passes against the chronopass API.
package chronopass

// Subscription is the stored pass record as returned by the API.
type Subscription struct {
	TokenID     uint64   `json:"token_id"`
	Owner       string   `json:"owner"`
	StartHeight uint64   `json:"start_height"`
	EndHeight   uint64   `json:"end_height"`
	TierID      uint64   `json:"tier_id"`
	AutoRenew   bool     `json:"auto_renew"`
	Features    []string `json:"features"`
	Renewals    uint32   `json:"renewals"`
}

// SubscriptionStatus pairs the stored record with the derived activity label.
type SubscriptionStatus struct {
	IsActive     bool          `json:"is_active"`
	Subscription *Subscription `json:"subscription"`
}

// AccessResult is the combined answer of one verification round trip.
type AccessResult struct {
	IsActive   bool   `json:"is_active"`
	Owner      string `json:"owner"`
	HasFeature bool   `json:"has_feature"`
}

// Tier is a priced subscription level.
type Tier struct {
	TierID       uint64 `json:"tier_id"`
	Price        uint64 `json:"price"`
	DurationDays uint32 `json:"duration_days"`
	MaxRenewals  uint32 `json:"max_renewals"`
}

type featureResult struct {
	HasFeature bool `json:"has_feature"`
}

type ownershipResult struct {
	IsOwner bool `json:"is_owner"`
}

// apiResponse is the envelope every API endpoint uses.
type apiResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Details string `json:"details,omitempty"`
	} `json:"error"`
	Message string `json:"message,omitempty"`
}
