package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/warfront/internal/api"
	"github.com/felixgeelhaar/warfront/internal/errors"
)

// fakeAuth records calls and returns a canned token or error.
type fakeAuth struct {
	loginCalls  int
	signupCalls int
	token       *api.Token
	err         error
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*api.Token, error) {
	f.loginCalls++
	return f.token, f.err
}

func (f *fakeAuth) Signup(ctx context.Context, name, email, password string) (*api.Token, error) {
	f.signupCalls++
	return f.token, f.err
}

func aliceToken() *api.Token {
	return &api.Token{
		AccessToken: "jwt-alice",
		TokenType:   "bearer",
		User:        api.User{ID: "u1", Name: "Alice", Email: "alice@example.com"},
	}
}

func newTestManager(auth *fakeAuth) (*Manager, *MemoryStore) {
	store := NewMemoryStore()
	factory := func(token string) *api.Client {
		if token == "" {
			return api.New("http://unit.test")
		}
		return api.New("http://unit.test", api.WithToken(token))
	}
	return NewManager(store, auth, factory), store
}

func TestSignupEmptyFieldsNoNetworkCall(t *testing.T) {
	tests := []struct {
		name                          string
		userName, email, pw, confirm string
	}{
		{"empty name", "", "a@b.com", "secret1", "secret1"},
		{"empty email", "Alice", "", "secret1", "secret1"},
		{"empty password", "Alice", "a@b.com", "", "secret1"},
		{"empty confirmation", "Alice", "a@b.com", "secret1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuth{token: aliceToken()}
			mgr, _ := newTestManager(auth)

			err := mgr.Signup(context.Background(), tt.userName, tt.email, tt.pw, tt.confirm)

			assert.True(t, errors.HasCode(err, errors.ErrCodeAuthFieldRequired), "got: %v", err)
			assert.Zero(t, auth.signupCalls, "no network call for local validation failures")
			assert.Equal(t, Anonymous, mgr.State())
		})
	}
}

func TestSignupPasswordRules(t *testing.T) {
	auth := &fakeAuth{token: aliceToken()}
	mgr, _ := newTestManager(auth)

	err := mgr.Signup(context.Background(), "Alice", "a@b.com", "short", "short")
	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthPasswordShort), "got: %v", err)

	err = mgr.Signup(context.Background(), "Alice", "a@b.com", "secret1", "secret2")
	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthPasswordMismatch), "got: %v", err)

	assert.Zero(t, auth.signupCalls)
	assert.Equal(t, Anonymous, mgr.State())
}

func TestLoginEmptyFields(t *testing.T) {
	auth := &fakeAuth{token: aliceToken()}
	mgr, _ := newTestManager(auth)

	err := mgr.Login(context.Background(), "", "secret1")
	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthFieldRequired))

	err = mgr.Login(context.Background(), "a@b.com", "")
	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthFieldRequired))

	assert.Zero(t, auth.loginCalls)
}

func TestLoginSuccessPersistsAndRestores(t *testing.T) {
	auth := &fakeAuth{token: aliceToken()}
	mgr, store := newTestManager(auth)

	require.NoError(t, mgr.Login(context.Background(), "alice@example.com", "secret1"))
	assert.Equal(t, Authenticated, mgr.State())

	sess, ok := mgr.Current()
	require.True(t, ok)
	assert.Equal(t, "Alice", sess.User.Name)

	creds, held, err := store.Load()
	require.NoError(t, err)
	require.True(t, held)
	assert.Equal(t, "jwt-alice", creds.AccessToken)

	// A fresh manager restoring from the same store reproduces
	// Authenticated without touching the network.
	restoredAuth := &fakeAuth{}
	restored := NewManager(store, restoredAuth, func(token string) *api.Client {
		return api.New("http://unit.test")
	})
	require.NoError(t, restored.Restore())

	assert.Equal(t, Authenticated, restored.State())
	assert.Zero(t, restoredAuth.loginCalls)
	assert.Zero(t, restoredAuth.signupCalls)
}

func TestLoginFailureStaysAnonymous(t *testing.T) {
	auth := &fakeAuth{err: errors.NewBadPasswordError()}
	mgr, store := newTestManager(auth)

	err := mgr.Login(context.Background(), "alice@example.com", "wrong-pw")
	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthBadPassword))
	assert.Equal(t, Anonymous, mgr.State())

	_, held, _ := store.Load()
	assert.False(t, held, "failed login must not persist credentials")
}

func TestSignupSuccess(t *testing.T) {
	auth := &fakeAuth{token: aliceToken()}
	mgr, _ := newTestManager(auth)

	require.NoError(t, mgr.Signup(context.Background(), "Alice", "alice@example.com", "secret1", "secret1"))

	assert.Equal(t, 1, auth.signupCalls)
	assert.Equal(t, Authenticated, mgr.State())
}

func TestLogout(t *testing.T) {
	auth := &fakeAuth{token: aliceToken()}
	mgr, store := newTestManager(auth)

	require.NoError(t, mgr.Login(context.Background(), "alice@example.com", "secret1"))
	require.NoError(t, mgr.Logout())

	assert.Equal(t, Anonymous, mgr.State())

	_, ok := mgr.Current()
	assert.False(t, ok)

	_, held, _ := store.Load()
	assert.False(t, held, "logout must clear durable storage")
}

func TestRestoreEmptyStoreStaysAnonymous(t *testing.T) {
	mgr, _ := newTestManager(&fakeAuth{})

	require.NoError(t, mgr.Restore())
	assert.Equal(t, Anonymous, mgr.State())
}

func TestRestoreIgnoresPartialCredentials(t *testing.T) {
	auth := &fakeAuth{}
	mgr, store := newTestManager(auth)

	// Token present but identity missing: treated as no session.
	require.NoError(t, store.Save(Credentials{AccessToken: "jwt-only"}))
	require.NoError(t, mgr.Restore())

	assert.Equal(t, Anonymous, mgr.State())
}

func TestBusyGateRejectsReentrantAuth(t *testing.T) {
	mgr, _ := newTestManager(&fakeAuth{token: aliceToken()})

	mgr.state = Authenticating
	err := mgr.Login(context.Background(), "alice@example.com", "secret1")

	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthInFlight), "got: %v", err)
}

func TestBeginCompleteSettlesAuthenticated(t *testing.T) {
	m, store := newTestManager(&fakeAuth{})

	require.NoError(t, m.Begin())
	assert.Equal(t, Authenticating, m.State())

	// Re-invocation while in flight is gated.
	err := m.Begin()
	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthInFlight), "got: %v", err)

	require.NoError(t, m.Complete(aliceToken()))
	assert.Equal(t, Authenticated, m.State())

	creds, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "jwt-alice", creds.AccessToken)
}

func TestAbortRevertsToPriorState(t *testing.T) {
	m, _ := newTestManager(&fakeAuth{token: aliceToken()})
	require.NoError(t, m.Login(context.Background(), "alice@example.com", "secret1"))
	require.Equal(t, Authenticated, m.State())

	// A later failed attempt reverts to Authenticated, not Anonymous.
	require.NoError(t, m.Begin())
	m.Abort()
	assert.Equal(t, Authenticated, m.State())

	sess, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "Alice", sess.User.Name)
}

func TestAbortOutsideAttemptIsNoop(t *testing.T) {
	m, _ := newTestManager(&fakeAuth{})
	m.Abort()
	assert.Equal(t, Anonymous, m.State())
}

func TestCompleteSaveFailureReverts(t *testing.T) {
	auth := &fakeAuth{}
	store := &failingStore{}
	factory := func(string) *api.Client { return api.New("http://unit.test") }
	m := NewManager(store, auth, factory)

	require.NoError(t, m.Begin())
	assert.Error(t, m.Complete(aliceToken()))
	assert.Equal(t, Anonymous, m.State())
}

// failingStore rejects every save.
type failingStore struct {
	MemoryStore
}

func (s *failingStore) Save(creds Credentials) error {
	return errors.New(errors.ErrCodeStoreWrite, "disk full")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "authenticating", Authenticating.String())
	assert.Equal(t, "authenticated", Authenticated.String())
}
