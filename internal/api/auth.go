package api

import (
	"context"
	"net/http"

	"github.com/felixgeelhaar/warfront/internal/errors"
)

// User identifies a commander
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Token is the authentication response
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new commander. A 400 response means the email is
// already registered.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*Token, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/signup", signupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var token Token
	if err := parseResponse(resp, &token); err != nil {
		if se, ok := err.(*StatusError); ok && se.Status == http.StatusBadRequest {
			return nil, errors.NewEmailTakenError(email)
		}
		return nil, generalize(err)
	}

	return &token, nil
}

// Login authenticates an existing commander. The backend distinguishes an
// unknown account (404) from a wrong password (401).
func (c *Client) Login(ctx context.Context, email, password string) (*Token, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var token Token
	if err := parseResponse(resp, &token); err != nil {
		if se, ok := err.(*StatusError); ok {
			switch se.Status {
			case http.StatusNotFound:
				return nil, errors.NewUserNotFoundError(email)
			case http.StatusUnauthorized:
				return nil, errors.NewBadPasswordError()
			}
		}
		return nil, generalize(err)
	}

	return &token, nil
}
