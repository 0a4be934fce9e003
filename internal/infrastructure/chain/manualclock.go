// Package chain provides block-height clock implementations. The manual
// clock is advanced through the admin API; the interval clock derives the
// height from wall time.
package chain

import (
	"context"
	"fmt"
	"sync"

	"github.com/Ttaiwl/chronopass/internal/domain/chain"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

// ManualClock holds an explicitly set block height. Heights only move
// forward; an attempt to rewind is rejected so validity windows stay
// consistent with everything already persisted.
type ManualClock struct {
	mu     sync.RWMutex
	height uint64
	logger logger.Interface
}

func NewManualClock(initialHeight uint64, log logger.Interface) *ManualClock {
	return &ManualClock{
		height: initialHeight,
		logger: log.Named("chain.manual"),
	}
}

// Height reports the current block height.
func (c *ManualClock) Height(_ context.Context) (uint64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.height, nil
}

// SetHeight advances the clock to the given height.
func (c *ManualClock) SetHeight(height uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if height < c.height {
		return fmt.Errorf("cannot rewind chain height from %d to %d", c.height, height)
	}

	c.height = height
	c.logger.Infow("chain height advanced", "height", height)
	return nil
}

var _ chain.Clock = (*ManualClock)(nil)
