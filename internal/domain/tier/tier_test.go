package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ttaiwl/chronopass/internal/shared/constants"
)

func TestNewTier_ValidInput(t *testing.T) {
	tier, err := NewTier(1, 1000, 30, 5)

	require.NoError(t, err)
	require.NotNil(t, tier)
	assert.Equal(t, uint64(1), tier.ID())
	assert.Equal(t, uint64(1000), tier.Price())
	assert.Equal(t, uint32(30), tier.DurationDays())
	assert.Equal(t, uint32(5), tier.MaxRenewals())
}

func TestNewTier_FreeTier(t *testing.T) {
	tier, err := NewTier(2, 0, 1, 0)

	require.NoError(t, err)
	assert.Equal(t, uint64(0), tier.Price(), "zero price is a valid free tier")
}

func TestNewTier_InvalidInput(t *testing.T) {
	tests := []struct {
		name         string
		id           uint64
		price        uint64
		durationDays uint32
		maxRenewals  uint32
	}{
		{"zero id", 0, 1000, 30, 0},
		{"price above cap", 1, constants.MaxTierPrice + 1, 30, 0},
		{"zero duration", 1, 1000, 0, 0},
		{"duration above cap", 1, 1000, constants.MaxDurationDays + 1, 0},
		{"renewal cap above limit", 1, 1000, 30, constants.MaxRenewalsCap + 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tier, err := NewTier(tc.id, tc.price, tc.durationDays, tc.maxRenewals)
			assert.ErrorIs(t, err, ErrInvalidTierConfig)
			assert.Nil(t, tier)
		})
	}
}

func TestTier_DurationBlocks(t *testing.T) {
	tier, err := NewTier(1, 1000, 30, 0)
	require.NoError(t, err)

	assert.Equal(t, uint64(30)*constants.BlocksPerDay, tier.DurationBlocks())
	assert.Equal(t, uint64(4320), tier.DurationBlocks())
}
