package usecases

import (
	"context"
	"sort"

	"github.com/Ttaiwl/chronopass/internal/domain/engine"
	"github.com/Ttaiwl/chronopass/internal/domain/ledger"
	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
	"github.com/Ttaiwl/chronopass/internal/domain/tier"
	"github.com/Ttaiwl/chronopass/internal/domain/token"
)

// In-memory fakes shared by the use case tests in this package.

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

type fakeTierRepo struct {
	tiers map[uint64]*tier.Tier
}

func newFakeTierRepo() *fakeTierRepo {
	return &fakeTierRepo{tiers: make(map[uint64]*tier.Tier)}
}

func (r *fakeTierRepo) Upsert(_ context.Context, t *tier.Tier) error {
	r.tiers[t.ID()] = t
	return nil
}

func (r *fakeTierRepo) GetByID(_ context.Context, id uint64) (*tier.Tier, error) {
	return r.tiers[id], nil
}

func (r *fakeTierRepo) List(context.Context) ([]*tier.Tier, error) {
	out := make([]*tier.Tier, 0, len(r.tiers))
	for _, t := range r.tiers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

type fakeSubscriptionRepo struct {
	subs map[uint64]*subscription.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[uint64]*subscription.Subscription)}
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, sub *subscription.Subscription) error {
	r.subs[sub.TokenID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) GetByTokenID(_ context.Context, tokenID uint64) (*subscription.Subscription, error) {
	return r.subs[tokenID], nil
}

func (r *fakeSubscriptionRepo) Update(_ context.Context, sub *subscription.Subscription) error {
	if _, ok := r.subs[sub.TokenID()]; !ok {
		return subscription.ErrSubscriptionNotFound
	}
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

type fakeOwnershipRepo struct {
	owners map[uint64]*token.Ownership
}

func newFakeOwnershipRepo() *fakeOwnershipRepo {
	return &fakeOwnershipRepo{owners: make(map[uint64]*token.Ownership)}
}

func (r *fakeOwnershipRepo) Create(_ context.Context, o *token.Ownership) error {
	r.owners[o.TokenID()] = o
	return nil
}

func (r *fakeOwnershipRepo) GetByTokenID(_ context.Context, tokenID uint64) (*token.Ownership, error) {
	return r.owners[tokenID], nil
}

func (r *fakeOwnershipRepo) Update(_ context.Context, o *token.Ownership) error {
	if _, ok := r.owners[o.TokenID()]; !ok {
		return token.ErrTokenNotFound
	}
	r.owners[o.TokenID()] = o
	return nil
}

type fakeLedger struct {
	balances  map[string]uint64
	transfers int
}

func newFakeLedger(seed map[string]uint64) *fakeLedger {
	balances := make(map[string]uint64, len(seed))
	for principal, amount := range seed {
		balances[principal] = amount
	}
	return &fakeLedger{balances: balances}
}

func (l *fakeLedger) BalanceOf(_ context.Context, principal string) (uint64, error) {
	return l.balances[principal], nil
}

func (l *fakeLedger) Transfer(_ context.Context, amount uint64, from, to string) error {
	if l.balances[from] < amount {
		return ledger.ErrInsufficientFunds
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	l.transfers++
	return nil
}

type fakeClock struct {
	height uint64
}

func (c *fakeClock) Height(context.Context) (uint64, error) {
	return c.height, nil
}

// noopTx runs the callback directly; the fakes have no rollback semantics.
type noopTx struct{}

func (noopTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
