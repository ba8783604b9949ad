// Package composer builds a pending, not-yet-submitted army roster.
package composer

import (
	"context"
	"strings"

	"github.com/felixgeelhaar/warfront/internal/api"
	"github.com/felixgeelhaar/warfront/internal/catalog"
	"github.com/felixgeelhaar/warfront/internal/errors"
)

// PendingUnit is a catalog entry tagged with an ephemeral client-local id
type PendingUnit struct {
	ID   string
	Spec catalog.UnitSpec
}

// Creator accepts a submitted roster. Implemented by registry.Registry.
type Creator interface {
	Create(ctx context.Context, ownerName string, units []api.Unit) error
}

// Composer maintains the commander name and the ordered pending roster
type Composer struct {
	ownerName string
	pending   []PendingUnit
	ids       IDSource
}

// New creates a Composer. ownerName defaults to the current identity's
// name when the caller is authenticated; pass "" otherwise.
func New(ownerName string, ids IDSource) *Composer {
	return &Composer{ownerName: ownerName, ids: ids}
}

// OwnerName returns the commander name the roster will be submitted under
func (c *Composer) OwnerName() string {
	return c.ownerName
}

// SetOwnerName replaces the commander name
func (c *Composer) SetOwnerName(name string) {
	c.ownerName = name
}

// Units returns the pending roster in insertion order. The slice is a copy.
func (c *Composer) Units() []PendingUnit {
	out := make([]PendingUnit, len(c.pending))
	copy(out, c.pending)
	return out
}

// TotalCost sums the cost of the pending roster
func (c *Composer) TotalCost() int {
	total := 0
	for _, u := range c.pending {
		total += u.Spec.Cost
	}
	return total
}

// AddUnit appends a fresh PendingUnit of the given type. Unknown types are
// a silent no-op; the catalog is closed and fixed, so this cannot happen
// through the UI.
func (c *Composer) AddUnit(unitType catalog.UnitType) {
	spec, ok := catalog.ByType(unitType)
	if !ok {
		return
	}
	c.pending = append(c.pending, PendingUnit{ID: c.ids.Next(), Spec: spec})
}

// RemoveUnit removes the pending unit with the given ephemeral id. Absent
// ids are a no-op.
func (c *Composer) RemoveUnit(id string) {
	for i, u := range c.pending {
		if u.ID == id {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

// Submission is a validated roster frozen at snapshot time: the owner name,
// the units stripped of their ephemeral ids, and the ids themselves so the
// caller can discharge exactly what was submitted once the create succeeds.
type Submission struct {
	Owner string
	Units []api.Unit
	IDs   []string
}

// Snapshot validates the pending state and freezes it into a Submission
// without mutating anything. Validation order: commander name first, then
// roster. Units recruited after the snapshot are untouched by a later
// Discharge of it.
func (c *Composer) Snapshot() (Submission, error) {
	owner := strings.TrimSpace(c.ownerName)
	if owner == "" {
		return Submission{}, errors.New(errors.ErrCodeArmyNoCommander, "missing commander name")
	}
	if len(c.pending) == 0 {
		return Submission{}, errors.New(errors.ErrCodeArmyEmptyRoster, "no units")
	}

	sub := Submission{
		Owner: owner,
		Units: make([]api.Unit, len(c.pending)),
		IDs:   make([]string, len(c.pending)),
	}
	for i, u := range c.pending {
		sub.IDs[i] = u.ID
		sub.Units[i] = api.Unit{
			Name:    u.Spec.Name,
			Type:    string(u.Spec.Type),
			Attack:  u.Spec.Attack,
			Defense: u.Spec.Defense,
			Health:  u.Spec.Health,
			Cost:    u.Spec.Cost,
		}
	}
	return sub, nil
}

// Discharge removes the pending units with the given ephemeral ids. Called
// after a submission's create succeeds; units recruited since the snapshot
// keep their place in the roster.
func (c *Composer) Discharge(ids []string) {
	for _, id := range ids {
		c.RemoveUnit(id)
	}
}

// Submit validates the roster and fires exactly one create. Validation
// order: commander name first, then roster. On success the submitted units
// leave the pending state; on failure it is kept untouched and the user
// re-invokes submit — there is no partial submission and no retry from
// composer state.
func (c *Composer) Submit(ctx context.Context, creator Creator) error {
	sub, err := c.Snapshot()
	if err != nil {
		return err
	}

	if err := creator.Create(ctx, sub.Owner, sub.Units); err != nil {
		return err
	}

	c.Discharge(sub.IDs)
	return nil
}
