package api

import (
	"context"
	"net/http"
	"time"
)

// Unit is a submitted combat unit. The roster sent on create carries catalog
// fields only; the backend assigns its own unit ids.
type Unit struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Attack  int    `json:"attack"`
	Defense int    `json:"defense"`
	Health  int    `json:"health"`
	Cost    int    `json:"cost"`
}

// Army is a named, owned collection of units. TotalPower is computed by the
// backend and must never be recomputed or fabricated client-side.
type Army struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Units      []Unit    `json:"units"`
	TotalPower int       `json:"total_power"`
	CreatedAt  time.Time `json:"created_at"`
}

type createArmyRequest struct {
	PlayerName string `json:"player_name"`
	Units      []Unit `json:"units"`
}

// ListArmies fetches all armies in the order the backend returns them
func (c *Client) ListArmies(ctx context.Context) ([]Army, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/armies", nil)
	if err != nil {
		return nil, err
	}

	var armies []Army
	if err := parseResponse(resp, &armies); err != nil {
		return nil, generalize(err)
	}
	return armies, nil
}

// GetArmy fetches a single army by id
func (c *Client) GetArmy(ctx context.Context, armyID string) (*Army, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/armies/"+armyID, nil)
	if err != nil {
		return nil, err
	}

	var army Army
	if err := parseResponse(resp, &army); err != nil {
		return nil, generalize(err)
	}
	return &army, nil
}

// CreateArmy submits a roster under the given commander name. Requires a
// bearer credential.
func (c *Client) CreateArmy(ctx context.Context, playerName string, units []Unit) (*Army, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/armies", createArmyRequest{
		PlayerName: playerName,
		Units:      units,
	})
	if err != nil {
		return nil, err
	}

	var army Army
	if err := parseResponse(resp, &army); err != nil {
		return nil, generalize(err)
	}
	return &army, nil
}

// DeleteArmy disbands one army by id. Requires a bearer credential.
func (c *Client) DeleteArmy(ctx context.Context, armyID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/armies/"+armyID, nil)
	if err != nil {
		return err
	}

	if err := parseResponse(resp, nil); err != nil {
		return generalize(err)
	}
	return nil
}
