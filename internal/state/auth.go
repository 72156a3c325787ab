package state

import (
	"context"
	"errors"
	"fmt"

	"nathanbeddoewebdev/hirectl/internal/domain"

	"go.uber.org/zap"
)

const (
	opLogin    = "login"
	opRegister = "register"
	opLogout   = "logout"
	opRestore  = "restore"
)

// AuthData is the authentication state.
type AuthData struct {
	User            *domain.User
	IsAuthenticated bool
}

// AuthSlice tracks the signed-in user.
type AuthSlice struct {
	base[AuthData]
}

// Login signs in and stores the issued tokens.
func (a *AuthSlice) Login(ctx context.Context, creds domain.Credentials) error {
	return run(ctx, &a.base, opLogin, func(ctx context.Context) (*domain.Session, error) {
		s, err := a.store.api.Login(ctx, creds)
		if err != nil {
			return nil, err
		}
		return s, a.saveTokens(s)
	}, applySession)
}

// Register creates an account and signs in.
func (a *AuthSlice) Register(ctx context.Context, reg domain.Registration) error {
	return run(ctx, &a.base, opRegister, func(ctx context.Context) (*domain.Session, error) {
		s, err := a.store.api.Register(ctx, reg)
		if err != nil {
			return nil, err
		}
		return s, a.saveTokens(s)
	}, applySession)
}

// Restore resumes a stored session by fetching the current user. With no
// stored token it leaves the slice unauthenticated.
func (a *AuthSlice) Restore(ctx context.Context) error {
	if a.store.tokens == nil || !a.store.tokens.HasSession() {
		return nil
	}
	return run(ctx, &a.base, opRestore, a.store.api.Me, func(d *AuthData, u *domain.User) {
		d.User = u
		d.IsAuthenticated = u != nil
	})
}

// Logout revokes the session on the server (best effort) and clears all
// local state.
func (a *AuthSlice) Logout(ctx context.Context) error {
	err := run(ctx, &a.base, opLogout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.store.api.Logout(ctx)
	}, nil)
	if err != nil && !errors.Is(err, ErrSuperseded) && !errors.Is(err, domain.ErrUnauthorized) {
		a.store.logger.Debug("server logout failed", zap.Error(err))
	}
	a.store.ForceLogout()
	return nil
}

func (a *AuthSlice) saveTokens(s *domain.Session) error {
	if a.store.tokens == nil {
		return nil
	}
	if err := a.store.tokens.SaveTokens(s.Token, s.RefreshToken); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func applySession(d *AuthData, s *domain.Session) {
	u := s.User
	d.User = &u
	d.IsAuthenticated = true
}
