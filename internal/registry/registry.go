// Package registry mirrors the remote army collection.
//
// Consistency model: create and delete never splice the local mirror;
// each successful mutation triggers a full refetch once the mutation's
// response is observed. The latency cost is deliberate — the mirror is
// always exactly what the backend last returned, and there is nothing to
// roll back on failure.
package registry

import (
	"context"

	"github.com/felixgeelhaar/warfront/internal/api"
	"github.com/felixgeelhaar/warfront/internal/errors"
	"github.com/felixgeelhaar/warfront/internal/log"
)

// API is the army surface of the remote service
type API interface {
	ListArmies(ctx context.Context) ([]api.Army, error)
	CreateArmy(ctx context.Context, playerName string, units []api.Unit) (*api.Army, error)
	DeleteArmy(ctx context.Context, armyID string) error
}

// Registry mirrors the remote collection of armies
type Registry struct {
	client API
	logger *log.Logger

	armies []api.Army
	busy   bool
}

// New creates a Registry backed by the given API client
func New(client API, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Registry{client: client, logger: logger}
}

// Armies returns the mirrored list in the order the backend returned it.
// The slice is a copy; the client never resorts it.
func (r *Registry) Armies() []api.Army {
	out := make([]api.Army, len(r.armies))
	copy(out, r.armies)
	return out
}

// Busy reports whether a mutation is in flight
func (r *Registry) Busy() bool {
	return r.busy
}

// Apply replaces the mirror with a freshly fetched list. Callers that fetch
// on another goroutine hand the result back here on their own event loop so
// the mirror is never written concurrently with a read.
func (r *Registry) Apply(armies []api.Army) {
	r.armies = armies
}

// Refresh refetches the full army list. On failure the prior mirror is
// kept untouched.
func (r *Registry) Refresh(ctx context.Context) error {
	armies, err := r.client.ListArmies(ctx)
	if err != nil {
		return err
	}
	r.Apply(armies)
	return nil
}

// Create submits a roster and, on success, refetches the list. The refetch
// is issued only after the create response is observed, never concurrently.
func (r *Registry) Create(ctx context.Context, ownerName string, units []api.Unit) error {
	if r.busy {
		return errors.New(errors.ErrCodeArmyInFlight, "an army mutation is already in flight")
	}
	r.busy = true
	defer func() { r.busy = false }()

	if _, err := r.client.CreateArmy(ctx, ownerName, units); err != nil {
		return err
	}

	if err := r.Refresh(ctx); err != nil {
		// The mutation itself succeeded; a failed refetch only leaves the
		// mirror one fetch behind.
		r.logger.WithError(err).Warn("army list refresh after create failed")
	}
	return nil
}

// Delete disbands one army and, on success, refetches the list
func (r *Registry) Delete(ctx context.Context, armyID string) error {
	if r.busy {
		return errors.New(errors.ErrCodeArmyInFlight, "an army mutation is already in flight")
	}
	r.busy = true
	defer func() { r.busy = false }()

	if err := r.client.DeleteArmy(ctx, armyID); err != nil {
		return err
	}

	if err := r.Refresh(ctx); err != nil {
		r.logger.WithError(err).Warn("army list refresh after delete failed")
	}
	return nil
}
