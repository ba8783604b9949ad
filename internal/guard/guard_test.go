package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/warfront/internal/session"
)

func TestAllowOpenViews(t *testing.T) {
	open := []View{ViewHome, ViewLogin, ViewSignup, ViewLeaderboard}
	states := []session.State{session.Anonymous, session.Authenticating, session.Authenticated}

	for _, view := range open {
		for _, state := range states {
			decision := Allow(view, state)
			assert.True(t, decision.Allowed, "view %s should be open in state %s", view, state)
		}
	}
}

func TestAllowProtectedViews(t *testing.T) {
	protected := []View{ViewArmies, ViewBattle}

	for _, view := range protected {
		t.Run(view.String(), func(t *testing.T) {
			denied := Allow(view, session.Anonymous)
			assert.False(t, denied.Allowed)
			assert.Equal(t, ViewLogin, denied.Redirect)
			assert.NotEmpty(t, denied.Notice)

			granted := Allow(view, session.Authenticated)
			assert.True(t, granted.Allowed)
		})
	}
}

func TestAllowIsPure(t *testing.T) {
	first := Allow(ViewArmies, session.Anonymous)
	second := Allow(ViewArmies, session.Anonymous)
	assert.Equal(t, first, second)
}

func TestGateNotifiesOnce(t *testing.T) {
	var gate Gate

	_, notify := gate.Check(ViewArmies, session.Anonymous)
	assert.True(t, notify, "first denial notifies")

	_, notify = gate.Check(ViewArmies, session.Anonymous)
	assert.False(t, notify, "re-render of the same denied state stays quiet")

	_, notify = gate.Check(ViewArmies, session.Anonymous)
	assert.False(t, notify)
}

func TestGateRearmsAfterAllowedView(t *testing.T) {
	var gate Gate

	_, notify := gate.Check(ViewBattle, session.Anonymous)
	assert.True(t, notify)

	decision, notify := gate.Check(ViewHome, session.Anonymous)
	assert.True(t, decision.Allowed)
	assert.False(t, notify)

	_, notify = gate.Check(ViewBattle, session.Anonymous)
	assert.True(t, notify, "denial after visiting an allowed view notifies again")
}

func TestGateNotifiesPerView(t *testing.T) {
	var gate Gate

	_, notify := gate.Check(ViewArmies, session.Anonymous)
	assert.True(t, notify)

	_, notify = gate.Check(ViewBattle, session.Anonymous)
	assert.True(t, notify, "a different denied view notifies")
}

func TestGateAllowsAfterLogin(t *testing.T) {
	var gate Gate

	_, _ = gate.Check(ViewArmies, session.Anonymous)

	decision, notify := gate.Check(ViewArmies, session.Authenticated)
	assert.True(t, decision.Allowed)
	assert.False(t, notify)
}
