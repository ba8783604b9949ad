package api

import (
	"context"
	"net/http"
	"time"
)

// Player is a read-only win/loss projection of a commander
type Player struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Wins         int       `json:"wins"`
	Losses       int       `json:"losses"`
	TotalBattles int       `json:"total_battles"`
	CreatedAt    time.Time `json:"created_at"`
}

// Stats is the global activity summary
type Stats struct {
	TotalPlayers int `json:"total_players"`
	TotalArmies  int `json:"total_armies"`
	TotalBattles int `json:"total_battles"`
}

// ListPlayers fetches all player records
func (c *Client) ListPlayers(ctx context.Context) ([]Player, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/players", nil)
	if err != nil {
		return nil, err
	}

	var players []Player
	if err := parseResponse(resp, &players); err != nil {
		return nil, generalize(err)
	}
	return players, nil
}

// GetPlayer fetches one player record by commander name
func (c *Client) GetPlayer(ctx context.Context, name string) (*Player, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/players/"+name, nil)
	if err != nil {
		return nil, err
	}

	var player Player
	if err := parseResponse(resp, &player); err != nil {
		return nil, generalize(err)
	}
	return &player, nil
}

// GetStats fetches the global activity summary
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats Stats
	if err := parseResponse(resp, &stats); err != nil {
		return nil, generalize(err)
	}
	return &stats, nil
}
