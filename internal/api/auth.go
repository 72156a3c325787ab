package api

import (
	"context"
	"fmt"
	"net/http"

	"nathanbeddoewebdev/hirectl/internal/domain"
)

// Login exchanges credentials for a session. The caller stores the tokens.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	var s domain.Session
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login", creds, &s); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &s, nil
}

// Register creates an account and returns its first session.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.Session, error) {
	var s domain.Session
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/register", reg, &s); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &s, nil
}

// Logout revokes the current session on the server.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.getJSON(ctx, "/users/me", nil, &u); err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}
	return &u, nil
}
