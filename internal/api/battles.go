package api

import (
	"context"
	"net/http"
	"time"
)

// Battle is an immutable record of one engagement. The client never edits
// or deletes battles.
type Battle struct {
	ID         string    `json:"id"`
	Army1ID    string    `json:"army1_id"`
	Army2ID    string    `json:"army2_id"`
	Army1Name  string    `json:"army1_name"`
	Army2Name  string    `json:"army2_name"`
	WinnerID   string    `json:"winner_id"`
	WinnerName string    `json:"winner_name"`
	BattleLog  []string  `json:"battle_log"`
	CreatedAt  time.Time `json:"created_at"`
}

type createBattleRequest struct {
	Army1ID string `json:"army1_id"`
	Army2ID string `json:"army2_id"`
}

// ListBattles fetches the recent battle history, newest first
func (c *Client) ListBattles(ctx context.Context) ([]Battle, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/battles", nil)
	if err != nil {
		return nil, err
	}

	var battles []Battle
	if err := parseResponse(resp, &battles); err != nil {
		return nil, generalize(err)
	}
	return battles, nil
}

// GetBattle fetches a single battle by id
func (c *Client) GetBattle(ctx context.Context, battleID string) (*Battle, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/battles/"+battleID, nil)
	if err != nil {
		return nil, err
	}

	var battle Battle
	if err := parseResponse(resp, &battle); err != nil {
		return nil, generalize(err)
	}
	return &battle, nil
}

// CreateBattle resolves an engagement between two armies on the backend.
// Each call creates a new, independent Battle record. Requires a bearer
// credential.
func (c *Client) CreateBattle(ctx context.Context, army1ID, army2ID string) (*Battle, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/battles", createBattleRequest{
		Army1ID: army1ID,
		Army2ID: army2ID,
	})
	if err != nil {
		return nil, err
	}

	var battle Battle
	if err := parseResponse(resp, &battle); err != nil {
		return nil, generalize(err)
	}
	return &battle, nil
}
