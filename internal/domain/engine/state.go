// Package engine owns the process-wide engine state: the token counter
// high-water mark and the service gate. Exactly one state record exists per
// deployment.
package engine

import "time"

// State is the singleton engine state aggregate. The counter is the
// high-water mark of issued token ids; ids are never reused even for tokens
// later considered void. The service flag gates mint and renew only.
type State struct {
	tokenCounter   uint64
	serviceEnabled bool
	updatedAt      time.Time
}

// NewState seeds a fresh deployment: counter at zero, service enabled.
func NewState() *State {
	return &State{
		tokenCounter:   0,
		serviceEnabled: true,
		updatedAt:      time.Now().UTC(),
	}
}

// ReconstructState rebuilds engine state from persistence.
func ReconstructState(tokenCounter uint64, serviceEnabled bool, updatedAt time.Time) *State {
	return &State{
		tokenCounter:   tokenCounter,
		serviceEnabled: serviceEnabled,
		updatedAt:      updatedAt,
	}
}

// TokenCounter returns the high-water mark of issued token ids.
func (s *State) TokenCounter() uint64 {
	return s.tokenCounter
}

// ServiceEnabled reports whether mint and renew are currently allowed.
func (s *State) ServiceEnabled() bool {
	return s.serviceEnabled
}

// UpdatedAt returns the last mutation timestamp
func (s *State) UpdatedAt() time.Time {
	return s.updatedAt
}

// AllocateToken advances the counter and returns the next token id.
func (s *State) AllocateToken() uint64 {
	s.tokenCounter++
	s.updatedAt = time.Now().UTC()
	return s.tokenCounter
}

// ToggleService flips the service gate and returns the new value.
func (s *State) ToggleService() bool {
	s.serviceEnabled = !s.serviceEnabled
	s.updatedAt = time.Now().UTC()
	return s.serviceEnabled
}
