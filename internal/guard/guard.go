// Package guard gates access to identity-requiring views.
package guard

import (
	"github.com/felixgeelhaar/warfront/internal/session"
)

// View identifies a navigable surface of the client
type View int

const (
	ViewHome View = iota
	ViewLogin
	ViewSignup
	ViewLeaderboard
	ViewArmies
	ViewBattle
)

// String returns the string representation of the view
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewLogin:
		return "login"
	case ViewSignup:
		return "signup"
	case ViewLeaderboard:
		return "leaderboard"
	case ViewArmies:
		return "armies"
	case ViewBattle:
		return "battle"
	default:
		return "unknown"
	}
}

// Decision is the outcome of an access check
type Decision struct {
	// Allowed means the view may render
	Allowed bool

	// Redirect is the view to navigate to when denied
	Redirect View

	// Notice is the user-facing denial message
	Notice string
}

// requiresAuth reports whether a view needs an authenticated session.
// Army composition/registry and battle orchestration mutate owned state;
// home, leaderboard and the auth surfaces do not.
func requiresAuth(view View) bool {
	return view == ViewArmies || view == ViewBattle
}

// Allow decides whether a view may render under the given session state.
// It is a pure function: same inputs, same decision, no side effects.
func Allow(view View, state session.State) Decision {
	if !requiresAuth(view) || state == session.Authenticated {
		return Decision{Allowed: true}
	}
	return Decision{
		Redirect: ViewLogin,
		Notice:   "Log in to command your armies",
	}
}

// Gate wraps Allow with denial memory so that re-rendering the same denied
// state does not notify again. Navigating to an allowed view, or a change
// of session state, re-arms the notice.
type Gate struct {
	denied     bool
	deniedView View
}

// Check runs the access decision. notify is true only the first time a
// given view is denied consecutively.
func (g *Gate) Check(view View, state session.State) (decision Decision, notify bool) {
	decision = Allow(view, state)
	if decision.Allowed {
		g.denied = false
		return decision, false
	}

	repeat := g.denied && g.deniedView == view
	g.denied = true
	g.deniedView = view
	return decision, !repeat
}
