package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/felixgeelhaar/warfront/internal/battle"
	"github.com/felixgeelhaar/warfront/internal/catalog"
	"github.com/felixgeelhaar/warfront/internal/errors"
	"github.com/felixgeelhaar/warfront/internal/guard"
	"github.com/felixgeelhaar/warfront/internal/session"
)

// Update handles messages and updates the model state (required by Bubble Tea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case statsLoadedMsg:
		if msg.view != m.view {
			m.logger.Debug("discarding stale stats response", "issued_for", msg.view.String())
			return m, nil
		}
		if msg.err != nil {
			m.logger.WithError(msg.err).Warn("stats fetch failed")
			return m, nil
		}
		m.stats = msg.stats
		return m, nil

	case armiesLoadedMsg:
		if msg.view != m.view {
			m.logger.Debug("discarding stale army list response", "issued_for", msg.view.String())
			return m, nil
		}
		if msg.err != nil {
			m.logger.WithError(msg.err).Warn("army list fetch failed")
			return m, nil
		}
		m.registry.Apply(msg.armies)
		m.clampArmyCursor()
		return m, nil

	case battlesLoadedMsg:
		if msg.view != m.view {
			m.logger.Debug("discarding stale battle history response", "issued_for", msg.view.String())
			return m, nil
		}
		if msg.err != nil {
			m.logger.WithError(msg.err).Warn("battle history fetch failed")
			return m, nil
		}
		m.orch.ReplaceHistory(msg.battles)
		return m, nil

	case playersLoadedMsg:
		if msg.view != m.view {
			m.logger.Debug("discarding stale player list response", "issued_for", msg.view.String())
			return m, nil
		}
		if msg.err != nil {
			m.logger.WithError(msg.err).Warn("player list fetch failed")
			m.players = nil
			return m, nil
		}
		m.players = msg.players
		return m, nil

	case authDoneMsg:
		return m.handleAuthDone(msg)

	case armyMutatedMsg:
		m.armyBusy = false
		if msg.err != nil {
			m.setNotice(noticeText(msg.err), true)
			return m, nil
		}
		if msg.armies != nil {
			m.registry.Apply(msg.armies)
		}
		if msg.disband {
			m.setNotice("Army disbanded", false)
		} else {
			// Only the units frozen into the submission leave the
			// roster; anything recruited while the call was in
			// flight stays pending for the next army.
			m.comp.Discharge(msg.submitted)
			m.composing = false
			m.pendingCursor = 0
			m.setNotice("Army submitted", false)
		}
		m.clampArmyCursor()
		return m, nil

	case engageDoneMsg:
		m.battleBusy = false
		if msg.err != nil {
			m.setNotice(noticeText(msg.err), true)
			return m, nil
		}
		m.orch.Resolve(msg.result, msg.history)
		m.setNotice("Battle resolved", false)
		return m, nil
	}

	// Forms consume non-key messages too (blink ticks and the like).
	if m.view == guard.ViewLogin || m.view == guard.ViewSignup {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) handleAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.authBusy = false
	if msg.err != nil {
		// Reported once; the machine reverts to its prior state and the
		// form is rebuilt for another attempt.
		m.manager.Abort()
		m.setNotice(noticeText(msg.err), true)
		if msg.signup {
			m.signupForm = m.newSignupForm()
			return m, m.signupForm.Init()
		}
		m.loginForm = m.newLoginForm()
		return m, m.loginForm.Init()
	}

	if err := m.manager.Complete(msg.token); err != nil {
		m.setNotice(noticeText(err), true)
		if msg.signup {
			m.signupForm = m.newSignupForm()
			return m, m.signupForm.Init()
		}
		m.loginForm = m.newLoginForm()
		return m, m.loginForm.Init()
	}

	m.rebuildDomain()
	next, cmd := m.navigate(guard.ViewHome)
	if sess, ok := next.manager.Current(); ok {
		next.setNotice("Welcome, Commander "+sess.User.Name, false)
	}
	return next, cmd
}

// handleKey routes key events. Form views own the keyboard; everything
// else gets global navigation plus per-view bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view == guard.ViewLogin || m.view == guard.ViewSignup {
		return m.updateForm(msg)
	}

	if m.composing {
		return m.handleComposerKey(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "1":
		return m.navigate(guard.ViewHome)
	case "2":
		return m.navigate(guard.ViewLeaderboard)
	case "3":
		return m.navigate(guard.ViewArmies)
	case "4":
		return m.navigate(guard.ViewBattle)
	case "l":
		return m.navigate(guard.ViewLogin)
	case "s":
		return m.navigate(guard.ViewSignup)
	case "o":
		return m.handleLogout()
	}

	switch m.view {
	case guard.ViewArmies:
		return m.handleArmiesKey(msg)
	case guard.ViewBattle:
		return m.handleBattleKey(msg)
	case guard.ViewHome:
		if msg.String() == "r" {
			return m, m.loadStatsCmd()
		}
	case guard.ViewLeaderboard:
		if msg.String() == "r" {
			return m, m.loadPlayersCmd()
		}
	}
	return m, nil
}

func (m Model) handleLogout() (tea.Model, tea.Cmd) {
	if _, ok := m.manager.Current(); !ok {
		return m, nil
	}
	if err := m.manager.Logout(); err != nil {
		m.setNotice(noticeText(err), true)
		return m, nil
	}
	m.rebuildDomain()
	next, cmd := m.navigate(guard.ViewHome)
	next.setNotice("Logged out", false)
	return next, cmd
}

func (m Model) handleArmiesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	armies := m.registry.Armies()

	switch msg.String() {
	case "up", "k":
		if m.armyCursor > 0 {
			m.armyCursor--
		}
	case "down", "j":
		if m.armyCursor < len(armies)-1 {
			m.armyCursor++
		}
	case "n":
		m.composing = true
		m.pendingCursor = 0
	case "d":
		if m.armyBusy || len(armies) == 0 {
			return m, nil
		}
		m.armyBusy = true
		return m, tea.Batch(m.spin.Tick, m.disbandArmyCmd(armies[m.armyCursor].ID))
	case "r":
		return m, m.refreshArmiesCmd(guard.ViewArmies)
	}
	return m, nil
}

func (m Model) handleComposerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := m.comp.Units()

	switch msg.String() {
	case "esc":
		m.composing = false
	case "i":
		m.comp.AddUnit(catalog.Infantry)
	case "t":
		m.comp.AddUnit(catalog.Tank)
	case "r":
		m.comp.AddUnit(catalog.Artillery)
	case "a":
		m.comp.AddUnit(catalog.Aircraft)
	case "up", "k":
		if m.pendingCursor > 0 {
			m.pendingCursor--
		}
	case "down", "j":
		if m.pendingCursor < len(pending)-1 {
			m.pendingCursor++
		}
	case "x":
		if len(pending) > 0 {
			m.comp.RemoveUnit(pending[m.pendingCursor].ID)
			if m.pendingCursor > 0 {
				m.pendingCursor--
			}
		}
	case "enter":
		if m.armyBusy {
			return m, nil
		}
		// The roster is validated and frozen here; the command only
		// carries the frozen submission over the wire.
		sub, err := m.comp.Snapshot()
		if err != nil {
			m.setNotice(noticeText(err), true)
			return m, nil
		}
		m.armyBusy = true
		return m, tea.Batch(m.spin.Tick, m.submitArmyCmd(sub))
	}
	return m, nil
}

func (m Model) handleBattleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	armies := m.registry.Armies()

	switch msg.String() {
	case "up", "k":
		if m.armyCursor > 0 {
			m.armyCursor--
		}
	case "down", "j":
		if m.armyCursor < len(armies)-1 {
			m.armyCursor++
		}
	case "a":
		if len(armies) > 0 {
			m.orch.Select(battle.SlotA, armies[m.armyCursor].ID)
		}
	case "b":
		if len(armies) > 0 {
			m.orch.Select(battle.SlotB, armies[m.armyCursor].ID)
		}
	case "enter":
		if m.battleBusy {
			return m, nil
		}
		armyA, armyB, err := m.orch.Pair()
		if err != nil {
			m.setNotice(noticeText(err), true)
			return m, nil
		}
		m.battleBusy = true
		return m, tea.Batch(m.spin.Tick, m.engageCmd(armyA, armyB))
	case "r":
		return m, tea.Batch(m.refreshArmiesCmd(guard.ViewBattle), m.refreshBattlesCmd())
	}
	return m, nil
}

// updateForm forwards messages to the active auth form and dispatches the
// network call once the form completes.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.loginForm
	signup := m.view == guard.ViewSignup
	if signup {
		form = m.signupForm
	}
	if form == nil {
		return m, nil
	}

	updated, cmd := form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		form = f
		if signup {
			m.signupForm = f
		} else {
			m.loginForm = f
		}
	}

	switch form.State {
	case huh.StateCompleted:
		if m.authBusy {
			return m, cmd
		}
		var checkErr error
		if signup {
			checkErr = session.CheckSignup(m.auth.name, m.auth.email, m.auth.password, m.auth.confirm)
		} else {
			checkErr = session.CheckLogin(m.auth.email, m.auth.password)
		}
		if checkErr == nil {
			checkErr = m.manager.Begin()
		}
		if checkErr != nil {
			m.setNotice(noticeText(checkErr), true)
			if signup {
				m.signupForm = m.newSignupForm()
				return m, tea.Batch(cmd, m.signupForm.Init())
			}
			m.loginForm = m.newLoginForm()
			return m, tea.Batch(cmd, m.loginForm.Init())
		}
		m.authBusy = true
		if signup {
			return m, tea.Batch(cmd, m.spin.Tick, m.signupCmd())
		}
		return m, tea.Batch(cmd, m.spin.Tick, m.loginCmd())
	case huh.StateAborted:
		return m.navigate(guard.ViewHome)
	}
	return m, cmd
}

// navigate runs the route guard and switches views. A denied view
// redirects to login, notifying at most once per denied state.
func (m Model) navigate(view guard.View) (Model, tea.Cmd) {
	decision, notify := m.gate.Check(view, m.manager.State())
	if !decision.Allowed {
		if notify {
			m.setNotice(decision.Notice, true)
		}
		m.view = decision.Redirect
		m.loginForm = m.newLoginForm()
		return m, m.loginForm.Init()
	}

	m.view = view
	m.composing = false

	switch view {
	case guard.ViewHome:
		return m, m.loadStatsCmd()
	case guard.ViewLeaderboard:
		return m, m.loadPlayersCmd()
	case guard.ViewArmies:
		m.armyCursor = 0
		return m, m.refreshArmiesCmd(guard.ViewArmies)
	case guard.ViewBattle:
		m.armyCursor = 0
		return m, tea.Batch(m.refreshArmiesCmd(guard.ViewBattle), m.refreshBattlesCmd())
	case guard.ViewLogin:
		m.loginForm = m.newLoginForm()
		return m, m.loginForm.Init()
	case guard.ViewSignup:
		m.signupForm = m.newSignupForm()
		return m, m.signupForm.Init()
	}
	return m, nil
}

func (m *Model) clampArmyCursor() {
	if n := len(m.registry.Armies()); m.armyCursor >= n {
		m.armyCursor = max(0, n-1)
	}
}

// noticeText extracts the one-line message of an error for display,
// leaving the multi-line suggestion block to CLI surfaces.
func noticeText(err error) string {
	if wfErr, ok := err.(*errors.WarfrontError); ok {
		return wfErr.Message
	}
	return err.Error()
}
