package tui

import (
	"github.com/felixgeelhaar/warfront/internal/api"
	"github.com/felixgeelhaar/warfront/internal/guard"
)

// Commands perform network calls only and hand their results back through
// these messages; every mutation of shared state happens in Update, on the
// event-loop goroutine. Read completions carry the view that issued them:
// a response arriving after the user navigated away is discarded, never
// applied to a view the user is no longer looking at.

// statsLoadedMsg carries the home view's activity summary
type statsLoadedMsg struct {
	view  guard.View
	stats *api.Stats
	err   error
}

// armiesLoadedMsg carries a fresh army mirror snapshot
type armiesLoadedMsg struct {
	view   guard.View
	armies []api.Army
	err    error
}

// battlesLoadedMsg carries a fresh battle history snapshot
type battlesLoadedMsg struct {
	view    guard.View
	battles []api.Battle
	err     error
}

// playersLoadedMsg carries the derived leaderboard order
type playersLoadedMsg struct {
	view    guard.View
	players []api.Player
	err     error
}

// authDoneMsg completes a login or signup attempt
type authDoneMsg struct {
	signup bool
	token  *api.Token
	err    error
}

// armyMutatedMsg completes an army create or disband. armies is the
// post-mutation refetch, nil when that refetch failed; submitted names the
// ephemeral ids a successful create consumed.
type armyMutatedMsg struct {
	disband   bool
	armies    []api.Army
	submitted []string
	err       error
}

// engageDoneMsg completes an engagement. history is nil when the follow-up
// feed refetch failed.
type engageDoneMsg struct {
	result  *api.Battle
	history []api.Battle
	err     error
}
