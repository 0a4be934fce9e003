package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/Ttaiwl/chronopass/internal/domain/chain"
)

// IntervalClock derives the block height from wall time: one block every
// secondsPerBlock seconds since the genesis timestamp. It never needs to be
// advanced and is the default for deployments without a real chain feed.
type IntervalClock struct {
	genesis         time.Time
	secondsPerBlock int64
	now             func() time.Time
}

func NewIntervalClock(genesisUnix, secondsPerBlock int64) (*IntervalClock, error) {
	if secondsPerBlock <= 0 {
		return nil, fmt.Errorf("seconds_per_block must be positive, got %d", secondsPerBlock)
	}
	return &IntervalClock{
		genesis:         time.Unix(genesisUnix, 0),
		secondsPerBlock: secondsPerBlock,
		now:             time.Now,
	}, nil
}

// Height reports the number of whole block intervals elapsed since genesis.
// Before genesis the height is zero.
func (c *IntervalClock) Height(_ context.Context) (uint64, error) {
	elapsed := c.now().Unix() - c.genesis.Unix()
	if elapsed < 0 {
		return 0, nil
	}
	return uint64(elapsed / c.secondsPerBlock), nil
}

var _ chain.Clock = (*IntervalClock)(nil)
