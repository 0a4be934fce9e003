// Package chain defines the engine's view of the host chain: a monotonically
// non-decreasing integer block height used as the time axis for every
// validity-window computation.
package chain

import "context"

// Clock reports the current block height.
type Clock interface {
	Height(ctx context.Context) (uint64, error)
}
