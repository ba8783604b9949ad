package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/warfront/internal/errors"
)

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]Army{})
	}))

	client := New(server.URL, WithToken("token-123"))
	_, err := client.ListArmies(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestNoBearerHeaderWhenAnonymous(t *testing.T) {
	var gotAuth string
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(Stats{})
	}))

	client := New(server.URL)
	_, err := client.GetStats(context.Background())
	require.NoError(t, err)

	assert.Empty(t, gotAuth)
}

func TestSignupSuccess(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/signup", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Alice", req["name"])

		_ = json.NewEncoder(w).Encode(Token{
			AccessToken: "jwt-abc",
			TokenType:   "bearer",
			User:        User{ID: "u1", Name: "Alice", Email: "alice@example.com"},
		})
	}))

	client := New(server.URL)
	token, err := client.Signup(context.Background(), "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "jwt-abc", token.AccessToken)
	assert.Equal(t, "Alice", token.User.Name)
}

func TestSignupEmailTaken(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
	}))

	client := New(server.URL)
	_, err := client.Signup(context.Background(), "Alice", "alice@example.com", "secret1")

	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthEmailTaken), "got: %v", err)
}

func TestLoginErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode errors.ErrorCode
	}{
		{"unknown user", http.StatusNotFound, errors.ErrCodeAuthUserNotFound},
		{"wrong password", http.StatusUnauthorized, errors.ErrCodeAuthBadPassword},
		{"server error", http.StatusInternalServerError, errors.ErrCodeAPIStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": "nope"})
			}))

			client := New(server.URL)
			_, err := client.Login(context.Background(), "alice@example.com", "secret1")

			assert.True(t, errors.HasCode(err, tt.wantCode), "got: %v", err)
		})
	}
}

func TestCreateArmyPayload(t *testing.T) {
	var got createArmyRequest
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/armies", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(Army{
			ID:         "a1",
			PlayerName: got.PlayerName,
			Units:      got.Units,
			TotalPower: 420,
		})
	}))

	units := []Unit{
		{Name: "Infantry Squad", Type: "infantry", Attack: 30, Defense: 20, Health: 100, Cost: 50},
		{Name: "Battle Tank", Type: "tank", Attack: 80, Defense: 60, Health: 200, Cost: 150},
	}

	client := New(server.URL, WithToken("tk"))
	army, err := client.CreateArmy(context.Background(), "Alice", units)
	require.NoError(t, err)

	assert.Equal(t, "Alice", got.PlayerName)
	assert.Len(t, got.Units, 2)
	assert.Equal(t, 420, army.TotalPower)
}

func TestDeleteArmy(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/armies/a1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Army deleted successfully"})
	}))

	client := New(server.URL, WithToken("tk"))
	require.NoError(t, client.DeleteArmy(context.Background(), "a1"))
}

func TestCreateBattle(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req createBattleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a1", req.Army1ID)
		assert.Equal(t, "a2", req.Army2ID)

		_ = json.NewEncoder(w).Encode(Battle{
			ID:         "b1",
			Army1ID:    "a1",
			Army2ID:    "a2",
			Army1Name:  "Alice",
			Army2Name:  "Bob",
			WinnerName: "Alice",
			BattleLog:  []string{"Battle begins between Alice and Bob!"},
		})
	}))

	client := New(server.URL, WithToken("tk"))
	battle, err := client.CreateBattle(context.Background(), "a1", "a2")
	require.NoError(t, err)

	assert.Equal(t, "Alice", battle.WinnerName)
	assert.NotEmpty(t, battle.BattleLog)
}

func TestUnauthorizedMutation(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Token has expired"})
	}))

	client := New(server.URL, WithToken("stale"))
	_, err := client.CreateBattle(context.Background(), "a1", "a2")

	assert.True(t, errors.HasCode(err, errors.ErrCodeAPIUnauthorized), "got: %v", err)
}

func TestConnectionFailure(t *testing.T) {
	client := New("http://127.0.0.1:1")
	_, err := client.ListPlayers(context.Background())

	assert.True(t, errors.HasCode(err, errors.ErrCodeAPIRequest), "got: %v", err)
}
