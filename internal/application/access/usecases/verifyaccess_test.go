package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
)

type fakeSubscriptionRepo struct {
	subs  map[uint64]*subscription.Subscription
	reads int
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, sub *subscription.Subscription) error {
	r.subs[sub.TokenID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) GetByTokenID(_ context.Context, tokenID uint64) (*subscription.Subscription, error) {
	r.reads++
	return r.subs[tokenID], nil
}

func (r *fakeSubscriptionRepo) Update(_ context.Context, sub *subscription.Subscription) error {
	r.subs[sub.TokenID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) ListByOwner(_ context.Context, owner string) ([]*subscription.Subscription, error) {
	var out []*subscription.Subscription
	for _, sub := range r.subs {
		if sub.IsOwnedBy(owner) {
			out = append(out, sub)
		}
	}
	return out, nil
}

type fakeCache struct {
	snaps map[uint64]*SubscriptionSnapshot
	hits  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{snaps: make(map[uint64]*SubscriptionSnapshot)}
}

func (c *fakeCache) Get(_ context.Context, tokenID uint64) (*SubscriptionSnapshot, bool) {
	snap, ok := c.snaps[tokenID]
	if ok {
		c.hits++
	}
	return snap, ok
}

func (c *fakeCache) Set(_ context.Context, snap *SubscriptionSnapshot) {
	c.snaps[snap.TokenID] = snap
}

func (c *fakeCache) Invalidate(_ context.Context, tokenID uint64) {
	delete(c.snaps, tokenID)
}

type fakeClock struct {
	height uint64
}

func (c *fakeClock) Height(context.Context) (uint64, error) {
	return c.height, nil
}

// Token 1 owned by alice, window [100, 100+30*144], features core+premium.
func newAccessRepo(t *testing.T) *fakeSubscriptionRepo {
	t.Helper()

	sub, err := subscription.NewSubscription(1, "alice", 1, 100, 30*144, []string{"core", "premium"})
	require.NoError(t, err)

	return &fakeSubscriptionRepo{subs: map[uint64]*subscription.Subscription{1: sub}}
}

func TestVerifyAccess_Active(t *testing.T) {
	repo := newAccessRepo(t)
	uc := NewVerifyAccessUseCase(repo, nil, &fakeClock{height: 500})

	result, err := uc.Execute(context.Background(), VerifyAccessQuery{TokenID: 1, FeatureKey: "premium"})

	require.NoError(t, err)
	assert.True(t, result.IsActive)
	assert.Equal(t, "alice", result.Owner)
	assert.True(t, result.HasFeature)
}

func TestVerifyAccess_ExpiredIsNotAnError(t *testing.T) {
	repo := newAccessRepo(t)
	uc := NewVerifyAccessUseCase(repo, nil, &fakeClock{height: 100 + 30*144 + 1})

	result, err := uc.Execute(context.Background(), VerifyAccessQuery{TokenID: 1, FeatureKey: "premium"})

	require.NoError(t, err)
	assert.False(t, result.IsActive)
	assert.Equal(t, "alice", result.Owner, "ownership survives expiry")
	assert.False(t, result.HasFeature, "no feature resolves on an expired pass")
}

func TestVerifyAccess_UnknownToken(t *testing.T) {
	repo := newAccessRepo(t)
	uc := NewVerifyAccessUseCase(repo, nil, &fakeClock{height: 500})

	result, err := uc.Execute(context.Background(), VerifyAccessQuery{TokenID: 42, FeatureKey: "core"})

	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
	assert.Nil(t, result)
}

func TestVerifyAccess_CacheHitSkipsRepository(t *testing.T) {
	repo := newAccessRepo(t)
	cache := newFakeCache()
	uc := NewVerifyAccessUseCase(repo, cache, &fakeClock{height: 500})

	_, err := uc.Execute(context.Background(), VerifyAccessQuery{TokenID: 1, FeatureKey: "core"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.reads)

	_, err = uc.Execute(context.Background(), VerifyAccessQuery{TokenID: 1, FeatureKey: "core"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.reads, "second read is served from the cache")
	assert.Equal(t, 1, cache.hits)
}

func TestHasFeature(t *testing.T) {
	repo := newAccessRepo(t)

	tests := []struct {
		name   string
		height uint64
		key    string
		want   bool
	}{
		{"active with feature", 500, "core", true},
		{"active unknown key", 500, "ultra", false},
		{"boundary end height still active", 100 + 30*144, "core", true},
		{"expired", 100 + 30*144 + 1, "core", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewHasFeatureUseCase(repo, nil, &fakeClock{height: tt.height})
			got, err := uc.Execute(context.Background(), HasFeatureQuery{TokenID: 1, FeatureKey: tt.key})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasFeature_UnknownToken(t *testing.T) {
	uc := NewHasFeatureUseCase(newAccessRepo(t), nil, &fakeClock{height: 500})

	_, err := uc.Execute(context.Background(), HasFeatureQuery{TokenID: 42, FeatureKey: "core"})

	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
}

func TestVerifyOwnership(t *testing.T) {
	repo := newAccessRepo(t)
	uc := NewVerifyOwnershipUseCase(repo, nil)

	isOwner, err := uc.Execute(context.Background(), VerifyOwnershipQuery{TokenID: 1, ExpectedOwner: "alice"})
	require.NoError(t, err)
	assert.True(t, isOwner)

	isOwner, err = uc.Execute(context.Background(), VerifyOwnershipQuery{TokenID: 1, ExpectedOwner: "bob"})
	require.NoError(t, err)
	assert.False(t, isOwner, "a mismatch is a plain false, not an error")

	_, err = uc.Execute(context.Background(), VerifyOwnershipQuery{TokenID: 42, ExpectedOwner: "alice"})
	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
}

func TestGetSubscription(t *testing.T) {
	repo := newAccessRepo(t)
	uc := NewGetSubscriptionUseCase(repo, nil, &fakeClock{height: 500})

	result, err := uc.Execute(context.Background(), GetSubscriptionQuery{TokenID: 1})

	require.NoError(t, err)
	assert.True(t, result.IsActive)
	assert.Equal(t, uint64(1), result.Subscription.TokenID)
	assert.Equal(t, []string{"core", "premium"}, result.Subscription.Features)
}

func TestGetSubscription_Expired(t *testing.T) {
	repo := newAccessRepo(t)
	uc := NewGetSubscriptionUseCase(repo, nil, &fakeClock{height: 100 + 30*144 + 1})

	result, err := uc.Execute(context.Background(), GetSubscriptionQuery{TokenID: 1})

	require.NoError(t, err)
	assert.False(t, result.IsActive)
	assert.NotNil(t, result.Subscription, "the record remains readable after expiry")
}
