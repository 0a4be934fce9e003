package chain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

func TestManualClock_SetHeight(t *testing.T) {
	clock := NewManualClock(100, logger.NewLogger())

	height, err := clock.Height(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), height)

	require.NoError(t, clock.SetHeight(250))
	height, _ = clock.Height(context.Background())
	assert.Equal(t, uint64(250), height)
}

func TestManualClock_RejectsRewind(t *testing.T) {
	clock := NewManualClock(100, logger.NewLogger())

	err := clock.SetHeight(99)
	assert.Error(t, err)

	height, _ := clock.Height(context.Background())
	assert.Equal(t, uint64(100), height)
}

func TestManualClock_SetSameHeight(t *testing.T) {
	clock := NewManualClock(100, logger.NewLogger())

	assert.NoError(t, clock.SetHeight(100), "re-announcing the current height is allowed")
}

func TestIntervalClock_Height(t *testing.T) {
	genesis := time.Now().Add(-time.Hour).Unix()

	clock, err := NewIntervalClock(genesis, 600)
	require.NoError(t, err)

	clock.now = func() time.Time { return time.Unix(genesis+3600, 0) }

	height, err := clock.Height(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(6), height, "one block per 600s over an hour")
}

func TestIntervalClock_BeforeGenesis(t *testing.T) {
	genesis := time.Now().Add(time.Hour).Unix()

	clock, err := NewIntervalClock(genesis, 600)
	require.NoError(t, err)

	clock.now = func() time.Time { return time.Unix(genesis-100, 0) }

	height, err := clock.Height(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), height)
}

func TestIntervalClock_InvalidInterval(t *testing.T) {
	_, err := NewIntervalClock(0, 0)
	assert.Error(t, err)

	_, err = NewIntervalClock(0, -5)
	assert.Error(t, err)
}
