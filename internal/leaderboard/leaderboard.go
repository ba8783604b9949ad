// Package leaderboard derives the commander ranking from player records.
package leaderboard

import (
	"context"
	"sort"

	"github.com/felixgeelhaar/warfront/internal/api"
)

// API is the player surface of the remote service
type API interface {
	ListPlayers(ctx context.Context) ([]api.Player, error)
}

// Leaderboard is a read-only ranking view
type Leaderboard struct {
	client API
}

// New creates a Leaderboard backed by the given API client
func New(client API) *Leaderboard {
	return &Leaderboard{client: client}
}

// List fetches player records and orders them by descending wins. Ties keep
// their fetch order: the intended secondary key is unconfirmed, so no
// tie-break is invented here.
func (l *Leaderboard) List(ctx context.Context) ([]api.Player, error) {
	players, err := l.client.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Wins > players[j].Wins
	})
	return players, nil
}
