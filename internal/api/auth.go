package api

import (
	"context"

	"github.com/ami-friedman/budget-compass/internal/models"
)

// LoginResponse is the acknowledgement for a magic-link request. The link
// itself arrives by email; the client only learns that sending succeeded.
type LoginResponse struct {
	Message string `json:"message"`
}

// VerifyResponse carries the session token exchanged for a one-time
// magic-link token.
type VerifyResponse struct {
	AccessToken string `json:"access_token"`
}

// Login asks the backend to email a magic link to the given address.
func (c *Client) Login(ctx context.Context, email string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.post(ctx, "/api/auth/login", map[string]string{"email": email}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify exchanges a one-time magic-link token for a session token.
func (c *Client) Verify(ctx context.Context, token string) (*VerifyResponse, error) {
	var resp VerifyResponse
	err := c.post(ctx, "/api/auth/verify", map[string]string{"token": token}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser fetches the account behind the session token.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/api/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
