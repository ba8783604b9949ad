// Package battle drives the engagement cycle: select two armies, submit,
// render the immutable result.
package battle

import (
	"context"

	"github.com/felixgeelhaar/warfront/internal/api"
	"github.com/felixgeelhaar/warfront/internal/errors"
	"github.com/felixgeelhaar/warfront/internal/log"
)

// API is the battle surface of the remote service
type API interface {
	CreateBattle(ctx context.Context, army1ID, army2ID string) (*api.Battle, error)
	ListBattles(ctx context.Context) ([]api.Battle, error)
}

// Slot identifies one side of the engagement
type Slot int

const (
	SlotA Slot = iota
	SlotB
)

// Orchestrator holds the current selection and the one-shot last result
type Orchestrator struct {
	client API
	logger *log.Logger

	armyA      string
	armyB      string
	lastResult *api.Battle
	history    []api.Battle
	busy       bool
}

// New creates an Orchestrator backed by the given API client
func New(client API, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Orchestrator{client: client, logger: logger}
}

// Select sets one of the two selection slots
func (o *Orchestrator) Select(slot Slot, armyID string) {
	if slot == SlotA {
		o.armyA = armyID
		return
	}
	o.armyB = armyID
}

// Selection returns the current slot pair
func (o *Orchestrator) Selection() (armyA, armyB string) {
	return o.armyA, o.armyB
}

// LastResult returns the most recent battle, or nil before any engagement
func (o *Orchestrator) LastResult() *api.Battle {
	return o.lastResult
}

// History returns the mirrored battle feed, newest first per the backend
func (o *Orchestrator) History() []api.Battle {
	out := make([]api.Battle, len(o.history))
	copy(out, o.history)
	return out
}

// Busy reports whether an engagement is in flight
func (o *Orchestrator) Busy() bool {
	return o.busy
}

// Pair validates the current selection for engagement without side effects.
// Both slots must be set and distinct.
func (o *Orchestrator) Pair() (armyA, armyB string, err error) {
	if o.armyA == "" || o.armyB == "" {
		return "", "", errors.New(errors.ErrCodeBattleSlotEmpty, "select two armies to engage")
	}
	if o.armyA == o.armyB {
		return "", "", errors.New(errors.ErrCodeBattleSameArmy, "an army cannot battle itself")
	}
	return o.armyA, o.armyB, nil
}

// Resolve records a completed engagement: the result becomes lastResult,
// both slots clear, and a non-nil history replaces the feed. Callers that
// run the network call on another goroutine hand the outcome back here on
// their own event loop.
func (o *Orchestrator) Resolve(result *api.Battle, history []api.Battle) {
	o.lastResult = result
	o.armyA = ""
	o.armyB = ""
	if history != nil {
		o.history = history
	}
}

// ReplaceHistory swaps in a freshly fetched battle feed
func (o *Orchestrator) ReplaceHistory(battles []api.Battle) {
	o.history = battles
}

// RefreshHistory refetches the battle feed. On failure the prior feed is
// kept untouched.
func (o *Orchestrator) RefreshHistory(ctx context.Context) error {
	battles, err := o.client.ListBattles(ctx)
	if err != nil {
		return err
	}
	o.ReplaceHistory(battles)
	return nil
}

// Engage submits the selected pair. Both slots must be set and distinct;
// violations fail locally without a network call. On success the result is
// stored, both slots clear, and the history refetches. On failure the
// selection is preserved so the user can retry without re-selecting.
// Each successful call creates one independent Battle record; the client
// assumes no idempotency from the backend.
func (o *Orchestrator) Engage(ctx context.Context) error {
	armyA, armyB, err := o.Pair()
	if err != nil {
		return err
	}
	if o.busy {
		return errors.New(errors.ErrCodeBattleInFlight, "an engagement is already in flight")
	}

	o.busy = true
	defer func() { o.busy = false }()

	result, err := o.client.CreateBattle(ctx, armyA, armyB)
	if err != nil {
		return err
	}

	history, err := o.client.ListBattles(ctx)
	if err != nil {
		o.logger.WithError(err).Warn("battle history refresh after engage failed")
		history = nil
	}
	o.Resolve(result, history)
	return nil
}
