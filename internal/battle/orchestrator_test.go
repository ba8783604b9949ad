package battle

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/warfront/internal/api"
	"github.com/felixgeelhaar/warfront/internal/errors"
)

// fakeBattlesAPI resolves engagements and records calls.
type fakeBattlesAPI struct {
	calls     []string
	battles   []api.Battle
	createErr error
	listErr   error
}

func (f *fakeBattlesAPI) CreateBattle(ctx context.Context, army1ID, army2ID string) (*api.Battle, error) {
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	battle := api.Battle{
		ID:         fmt.Sprintf("b%d", len(f.battles)+1),
		Army1ID:    army1ID,
		Army2ID:    army2ID,
		Army1Name:  "Alice",
		Army2Name:  "Bob",
		WinnerName: "Alice",
		BattleLog:  []string{"Battle begins between Alice and Bob!", "Alice is victorious!"},
	}
	f.battles = append([]api.Battle{battle}, f.battles...)
	return &battle, nil
}

func (f *fakeBattlesAPI) ListBattles(ctx context.Context) ([]api.Battle, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]api.Battle, len(f.battles))
	copy(out, f.battles)
	return out, nil
}

func TestSelect(t *testing.T) {
	o := New(&fakeBattlesAPI{}, nil)

	o.Select(SlotA, "a1")
	o.Select(SlotB, "a2")

	armyA, armyB := o.Selection()
	assert.Equal(t, "a1", armyA)
	assert.Equal(t, "a2", armyB)

	// Re-selecting a slot replaces it.
	o.Select(SlotA, "a3")
	armyA, _ = o.Selection()
	assert.Equal(t, "a3", armyA)
}

func TestEngageEmptySlotRejectedLocally(t *testing.T) {
	remote := &fakeBattlesAPI{}
	o := New(remote, nil)
	o.Select(SlotA, "a1")

	err := o.Engage(context.Background())

	assert.True(t, errors.HasCode(err, errors.ErrCodeBattleSlotEmpty), "got: %v", err)
	assert.Empty(t, remote.calls, "no network call for local validation failures")
}

func TestEngageSameArmyRejectedLocally(t *testing.T) {
	remote := &fakeBattlesAPI{}
	o := New(remote, nil)
	o.Select(SlotA, "a1")
	o.Select(SlotB, "a1")

	err := o.Engage(context.Background())

	assert.True(t, errors.HasCode(err, errors.ErrCodeBattleSameArmy), "got: %v", err)
	assert.Empty(t, remote.calls)
}

func TestEngageSuccess(t *testing.T) {
	remote := &fakeBattlesAPI{}
	o := New(remote, nil)
	o.Select(SlotA, "a1")
	o.Select(SlotB, "a2")

	require.NoError(t, o.Engage(context.Background()))

	// Exactly one create, then the sequential history refetch.
	assert.Equal(t, []string{"create", "list"}, remote.calls)

	result := o.LastResult()
	require.NotNil(t, result)
	assert.Equal(t, "Alice", result.WinnerName)
	assert.NotEmpty(t, result.BattleLog)

	armyA, armyB := o.Selection()
	assert.Empty(t, armyA, "slots clear on success")
	assert.Empty(t, armyB)

	assert.Len(t, o.History(), 1)
}

func TestEngageFailurePreservesSelection(t *testing.T) {
	remote := &fakeBattlesAPI{createErr: errors.NewAPIStatusError(500, "boom")}
	o := New(remote, nil)
	o.Select(SlotA, "a1")
	o.Select(SlotB, "a2")

	err := o.Engage(context.Background())
	assert.Error(t, err)

	armyA, armyB := o.Selection()
	assert.Equal(t, "a1", armyA, "selection preserved for retry")
	assert.Equal(t, "a2", armyB)
	assert.Nil(t, o.LastResult())
	assert.False(t, o.Busy(), "busy flag resets on failure")
}

func TestEngageRepeatedPairCreatesIndependentBattles(t *testing.T) {
	remote := &fakeBattlesAPI{}
	o := New(remote, nil)

	for i := 0; i < 2; i++ {
		o.Select(SlotA, "a1")
		o.Select(SlotB, "a2")
		require.NoError(t, o.Engage(context.Background()))
	}

	history := o.History()
	require.Len(t, history, 2)
	assert.NotEqual(t, history[0].ID, history[1].ID)
}

func TestEngageBusyGate(t *testing.T) {
	remote := &fakeBattlesAPI{}
	o := New(remote, nil)
	o.Select(SlotA, "a1")
	o.Select(SlotB, "a2")
	o.busy = true

	err := o.Engage(context.Background())

	assert.True(t, errors.HasCode(err, errors.ErrCodeBattleInFlight), "got: %v", err)
	assert.Empty(t, remote.calls)
}

func TestRefreshHistoryFailureKeepsPriorFeed(t *testing.T) {
	remote := &fakeBattlesAPI{}
	o := New(remote, nil)
	o.Select(SlotA, "a1")
	o.Select(SlotB, "a2")
	require.NoError(t, o.Engage(context.Background()))

	remote.listErr = errors.NewAPIStatusError(500, "boom")
	assert.Error(t, o.RefreshHistory(context.Background()))
	assert.Len(t, o.History(), 1)
}
