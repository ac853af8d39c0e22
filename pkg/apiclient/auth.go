package apiclient

import (
	"context"
	"net/http"
)

// TokenResponse is the credential issued by login and signup.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AccountResponse is the backend's canonical user record as served by
// /auth/me.
type AccountResponse struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	IsMember         bool   `json:"is_member"`
	MembershipType   string `json:"membership_type,omitempty"`
	ProfileCompleted bool   `json:"profile_completed"`
}

// Login exchanges credentials for a bearer token. The token is cached on the
// client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.AccessToken)
	return &out, nil
}

// Signup registers a new account and caches the issued token.
func (c *Client) Signup(ctx context.Context, email, password, name string) (*TokenResponse, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}{email, password, name}

	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", body, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.AccessToken)
	return &out, nil
}

// Me fetches the account record for the cached token.
func (c *Client) Me(ctx context.Context) (*AccountResponse, error) {
	var out AccountResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
