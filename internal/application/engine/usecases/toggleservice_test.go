package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ttaiwl/chronopass/internal/domain/engine"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

type fakeStateRepo struct {
	state *engine.State
}

func (r *fakeStateRepo) Get(context.Context) (*engine.State, error) {
	return r.state, nil
}

func (r *fakeStateRepo) Save(_ context.Context, s *engine.State) error {
	r.state = s
	return nil
}

func TestToggleService_SeedsStateOnFirstToggle(t *testing.T) {
	repo := &fakeStateRepo{}
	uc := NewToggleServiceUseCase(repo, "admin", logger.NewLogger())

	result, err := uc.Execute(context.Background(), ToggleServiceCommand{Caller: "admin"})

	require.NoError(t, err)
	assert.False(t, result.ServiceEnabled, "a fresh state starts enabled, so the first toggle disables")
	require.NotNil(t, repo.state)
	assert.False(t, repo.state.ServiceEnabled())
}

func TestToggleService_RoundTrip(t *testing.T) {
	repo := &fakeStateRepo{state: engine.NewState()}
	uc := NewToggleServiceUseCase(repo, "admin", logger.NewLogger())

	result, err := uc.Execute(context.Background(), ToggleServiceCommand{Caller: "admin"})
	require.NoError(t, err)
	assert.False(t, result.ServiceEnabled)

	result, err = uc.Execute(context.Background(), ToggleServiceCommand{Caller: "admin"})
	require.NoError(t, err)
	assert.True(t, result.ServiceEnabled)
}

func TestToggleService_NotAdministrator(t *testing.T) {
	repo := &fakeStateRepo{state: engine.NewState()}
	uc := NewToggleServiceUseCase(repo, "admin", logger.NewLogger())

	result, err := uc.Execute(context.Background(), ToggleServiceCommand{Caller: "alice"})

	assert.ErrorIs(t, err, engine.ErrNotAdministrator)
	assert.Nil(t, result)
	assert.True(t, repo.state.ServiceEnabled(), "the gate is untouched on a rejected toggle")
}

func TestGetServiceStatus(t *testing.T) {
	repo := &fakeStateRepo{state: engine.ReconstructState(41, true, time.Now())}
	uc := NewGetServiceStatusUseCase(repo)

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, result.ServiceEnabled)
	assert.Equal(t, uint64(41), result.TokenCounter)
}

func TestGetServiceStatus_FreshDeployment(t *testing.T) {
	repo := &fakeStateRepo{}
	uc := NewGetServiceStatusUseCase(repo)

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, result.ServiceEnabled)
	assert.Equal(t, uint64(0), result.TokenCounter)
	assert.Nil(t, repo.state, "a read does not persist anything")
}
