// Package session owns the authenticated identity and its lifecycle.
//
// The state machine is Anonymous → Authenticating → Authenticated, with
// logout returning to Anonymous. Authenticating always exits: to
// Authenticated on success, or back to the prior state on failure. No error
// state is retained; failures are reported once through the returned error.
package session

import (
	"context"
	"strings"

	"github.com/felixgeelhaar/warfront/internal/api"
	"github.com/felixgeelhaar/warfront/internal/errors"
)

// State is the authentication state
type State int

const (
	// Anonymous means no identity is established
	Anonymous State = iota
	// Authenticating means a login or signup call is in flight
	Authenticating
	// Authenticated means a credential and identity are held
	Authenticated
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// MinPasswordLen is the minimum accepted password length on signup
const MinPasswordLen = 6

// Session is the established identity and its credential
type Session struct {
	Token string
	User  api.User
}

// Authenticator is the subset of the API client the Manager needs
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.Token, error)
	Signup(ctx context.Context, name, email, password string) (*api.Token, error)
}

// ClientFactory builds an API client carrying the given credential. An empty
// token yields an anonymous client. A fresh client is built on every session
// transition instead of mutating shared request configuration.
type ClientFactory func(token string) *api.Client

// Manager owns the session state machine and the durable credential store
type Manager struct {
	store   Store
	auth    Authenticator
	factory ClientFactory

	state State
	prior State
	sess  Session
}

// NewManager creates a Manager with injected collaborators
func NewManager(store Store, auth Authenticator, factory ClientFactory) *Manager {
	return &Manager{
		store:   store,
		auth:    auth,
		factory: factory,
		state:   Anonymous,
	}
}

// NewManagerForURL wires a Manager to a real API endpoint
func NewManagerForURL(store Store, baseURL string) *Manager {
	factory := func(token string) *api.Client {
		if token == "" {
			return api.New(baseURL)
		}
		return api.New(baseURL, api.WithToken(token))
	}
	return NewManager(store, factory(""), factory)
}

// State returns the current authentication state
func (m *Manager) State() State {
	return m.state
}

// Current returns the established session. ok is false unless Authenticated.
func (m *Manager) Current() (Session, bool) {
	if m.state != Authenticated {
		return Session{}, false
	}
	return m.sess, true
}

// Client returns an API client parameterized by the current session: it
// carries the bearer credential when Authenticated and nothing otherwise.
func (m *Manager) Client() *api.Client {
	if m.state == Authenticated {
		return m.factory(m.sess.Token)
	}
	return m.factory("")
}

// Restore reads the durable store on process start. When both credential
// and identity are present it transitions straight to Authenticated without
// a network round trip; a stale credential is only discovered on the next
// rejected call.
func (m *Manager) Restore() error {
	creds, ok, err := m.store.Load()
	if err != nil {
		return err
	}
	if !ok || creds.AccessToken == "" || creds.User.ID == "" {
		return nil
	}

	m.sess = Session{Token: creds.AccessToken, User: creds.User}
	m.state = Authenticated
	return nil
}

// CheckLogin validates login inputs locally, before any network call
func CheckLogin(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return errors.New(errors.ErrCodeAuthFieldRequired, "email and password are required")
	}
	return nil
}

// CheckSignup validates signup inputs locally, before any network call.
// All fields are required; the password must be at least MinPasswordLen
// characters and match its confirmation.
func CheckSignup(name, email, password, confirm string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" || confirm == "" {
		return errors.New(errors.ErrCodeAuthFieldRequired, "name, email, password and confirmation are required")
	}
	if len(password) < MinPasswordLen {
		return errors.New(errors.ErrCodeAuthPasswordShort, "password must be at least 6 characters")
	}
	if password != confirm {
		return errors.New(errors.ErrCodeAuthPasswordMismatch, "passwords do not match")
	}
	return nil
}

// Login authenticates with email and password. Inputs are validated locally
// before any network call.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if err := CheckLogin(email, password); err != nil {
		return err
	}
	if err := m.Begin(); err != nil {
		return err
	}

	token, err := m.auth.Login(ctx, email, password)
	if err != nil {
		m.Abort()
		return err
	}
	return m.Complete(token)
}

// Signup registers a new commander. All checks run locally before any
// network call.
func (m *Manager) Signup(ctx context.Context, name, email, password, confirm string) error {
	if err := CheckSignup(name, email, password, confirm); err != nil {
		return err
	}
	if err := m.Begin(); err != nil {
		return err
	}

	token, err := m.auth.Signup(ctx, name, email, password)
	if err != nil {
		m.Abort()
		return err
	}
	return m.Complete(token)
}

// Begin enters the Authenticating leg of the state machine. The busy gate
// rejects re-invocation while a call is in flight. Callers that run the
// network call elsewhere settle the machine with Complete or Abort; every
// attempt ends in exactly one of the two.
func (m *Manager) Begin() error {
	if m.state == Authenticating {
		return errors.New(errors.ErrCodeAuthInFlight, "an authentication request is already in flight")
	}
	m.prior = m.state
	m.state = Authenticating
	return nil
}

// Abort reverts a failed authentication attempt to the state before Begin.
// Failures are reported once by the caller; no error state is retained.
func (m *Manager) Abort() {
	if m.state == Authenticating {
		m.state = m.prior
	}
}

// Complete installs a successful authentication: the credential is saved
// durably before the machine settles in Authenticated. A failed save
// reverts like a failed attempt.
func (m *Manager) Complete(token *api.Token) error {
	creds := Credentials{AccessToken: token.AccessToken, User: token.User}
	if err := m.store.Save(creds); err != nil {
		m.Abort()
		return err
	}

	m.sess = Session{Token: token.AccessToken, User: token.User}
	m.state = Authenticated
	return nil
}

// Logout clears the durable credential and returns to Anonymous. All
// subsequently issued clients carry no credential.
func (m *Manager) Logout() error {
	if err := m.store.Clear(); err != nil {
		return err
	}
	m.sess = Session{}
	m.state = Anonymous
	return nil
}
