// Package tui is the interactive terminal client. It follows the Warfront
// execution model: one logical thread of control (the bubbletea update
// loop) processes key events and network completions; network calls run as
// commands whose results come back as messages, and every mutating
// operation is gated by a busy flag while in flight.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/felixgeelhaar/warfront/internal/api"
	"github.com/felixgeelhaar/warfront/internal/battle"
	"github.com/felixgeelhaar/warfront/internal/composer"
	"github.com/felixgeelhaar/warfront/internal/guard"
	"github.com/felixgeelhaar/warfront/internal/leaderboard"
	"github.com/felixgeelhaar/warfront/internal/log"
	"github.com/felixgeelhaar/warfront/internal/registry"
	"github.com/felixgeelhaar/warfront/internal/session"
)

// authFields backs the login and signup forms. Held behind a pointer so
// form bindings survive model copies.
type authFields struct {
	name     string
	email    string
	password string
	confirm  string
}

// Model is the TUI application state
type Model struct {
	logger *log.Logger
	styles Styles

	manager *session.Manager
	gate    *guard.Gate

	client   *api.Client
	registry *registry.Registry
	orch     *battle.Orchestrator
	board    *leaderboard.Leaderboard
	comp     *composer.Composer

	view    guard.View
	stats   *api.Stats
	players []api.Player

	notice      string
	noticeIsErr bool

	authBusy   bool
	armyBusy   bool
	battleBusy bool
	spin       spinner.Model

	auth       *authFields
	loginForm  *huh.Form
	signupForm *huh.Form

	// armies view state
	armyCursor    int
	composing     bool
	pendingCursor int

	width    int
	height   int
	quitting bool
}

// NewModel creates the TUI model. The session manager should already have
// restored any durable credentials.
func NewModel(manager *session.Manager, logger *log.Logger) Model {
	if logger == nil {
		logger = log.DefaultLogger()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		logger:  logger,
		styles:  DefaultStyles(),
		manager: manager,
		gate:    &guard.Gate{},
		view:    guard.ViewHome,
		spin:    sp,
		auth:    &authFields{},
	}
	m.rebuildDomain()
	return m
}

// rebuildDomain constructs the domain components around a fresh API client.
// Called once at start and on every session transition: the credential is
// baked into the client rather than patched into shared call configuration.
func (m *Model) rebuildDomain() {
	client := m.manager.Client()
	m.client = client
	m.registry = registry.New(client, m.logger)
	m.orch = battle.New(client, m.logger)
	m.board = leaderboard.New(client)

	owner := ""
	if sess, ok := m.manager.Current(); ok {
		owner = sess.User.Name
	}
	m.comp = composer.New(owner, composer.UUIDSource{})
}

// Init initializes the TUI model (required by Bubble Tea)
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadStatsCmd())
}

// Network commands. Each closure runs on its own goroutine, so it only
// performs network calls on an immutable client and returns the outcome as
// a message; the mirror replacement, pending-roster discharge, and session
// transition all happen in Update. Calls carry no timeout or cancellation;
// an abandoned view does not cancel its in-flight call, and the stale
// completion is discarded on arrival instead.

func (m Model) loadStatsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		stats, err := client.GetStats(context.Background())
		return statsLoadedMsg{view: guard.ViewHome, stats: stats, err: err}
	}
}

func (m Model) refreshArmiesCmd(view guard.View) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		armies, err := client.ListArmies(context.Background())
		return armiesLoadedMsg{view: view, armies: armies, err: err}
	}
}

func (m Model) refreshBattlesCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		battles, err := client.ListBattles(context.Background())
		return battlesLoadedMsg{view: guard.ViewBattle, battles: battles, err: err}
	}
}

func (m Model) loadPlayersCmd() tea.Cmd {
	board := m.board
	return func() tea.Msg {
		players, err := board.List(context.Background())
		return playersLoadedMsg{view: guard.ViewLeaderboard, players: players, err: err}
	}
}

func (m Model) loginCmd() tea.Cmd {
	client := m.client
	email, password := m.auth.email, m.auth.password
	return func() tea.Msg {
		token, err := client.Login(context.Background(), email, password)
		return authDoneMsg{token: token, err: err}
	}
}

func (m Model) signupCmd() tea.Cmd {
	client := m.client
	fields := *m.auth
	return func() tea.Msg {
		token, err := client.Signup(context.Background(), fields.name, fields.email, fields.password)
		return authDoneMsg{signup: true, token: token, err: err}
	}
}

// submitArmyCmd sends a roster frozen at dispatch time. The refetch is
// issued only after the create response is observed; its failure leaves the
// mirror one fetch behind rather than failing the submission.
func (m Model) submitArmyCmd(sub composer.Submission) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		if _, err := client.CreateArmy(context.Background(), sub.Owner, sub.Units); err != nil {
			return armyMutatedMsg{err: err}
		}
		armies, err := client.ListArmies(context.Background())
		if err != nil {
			logger.WithError(err).Warn("army list refresh after create failed")
			armies = nil
		}
		return armyMutatedMsg{armies: armies, submitted: sub.IDs}
	}
}

func (m Model) disbandArmyCmd(armyID string) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		if err := client.DeleteArmy(context.Background(), armyID); err != nil {
			return armyMutatedMsg{disband: true, err: err}
		}
		armies, err := client.ListArmies(context.Background())
		if err != nil {
			logger.WithError(err).Warn("army list refresh after disband failed")
			armies = nil
		}
		return armyMutatedMsg{disband: true, armies: armies}
	}
}

func (m Model) engageCmd(armyA, armyB string) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		result, err := client.CreateBattle(context.Background(), armyA, armyB)
		if err != nil {
			return engageDoneMsg{err: err}
		}
		history, err := client.ListBattles(context.Background())
		if err != nil {
			logger.WithError(err).Warn("battle history refresh after engage failed")
			history = nil
		}
		return engageDoneMsg{result: result, history: history}
	}
}

// newLoginForm builds the login form bound to the shared auth fields
func (m *Model) newLoginForm() *huh.Form {
	*m.auth = authFields{}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Email").Value(&m.auth.email),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&m.auth.password),
	))
}

// newSignupForm builds the signup form bound to the shared auth fields
func (m *Model) newSignupForm() *huh.Form {
	*m.auth = authFields{}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Commander name").Value(&m.auth.name),
		huh.NewInput().Title("Email").Value(&m.auth.email),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&m.auth.password),
		huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&m.auth.confirm),
	))
}

// setNotice records a one-shot user-facing message
func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeIsErr = isErr
}

// Run starts the TUI program
func Run(manager *session.Manager, logger *log.Logger) error {
	program := tea.NewProgram(NewModel(manager, logger), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
