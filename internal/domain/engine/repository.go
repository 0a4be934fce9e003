package engine

import "context"

// StateRepository persists the singleton engine state. Get returns (nil, nil)
// before the first Save; callers seed with NewState in that case.
type StateRepository interface {
	Get(ctx context.Context) (*State, error)
	Save(ctx context.Context, s *State) error
}
