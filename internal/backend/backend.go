// Package backend builds the hiring-platform API client from the user's
// configuration and stored session. Commands go through Open so tests can
// swap the factory for a fake.
package backend

import (
	"context"
	"fmt"
	"io"
	"sync"

	"nathanbeddoewebdev/hirectl/internal/api"
	"nathanbeddoewebdev/hirectl/internal/config"
	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/services/auth"
	"nathanbeddoewebdev/hirectl/internal/state"

	"go.uber.org/zap"
)

// API is everything the commands call on the backend.
type API interface {
	state.API

	Refresh(ctx context.Context) (*domain.Session, error)
	ListApplications(ctx context.Context) ([]domain.Application, error)
	UpdateJob(ctx context.Context, id string, in domain.JobInput) (*domain.Job, error)
	UploadPicture(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Deps is what a Factory receives.
type Deps struct {
	Config *config.Config
	Tokens *auth.Tokens
	Logger *zap.Logger
}

// Factory builds an API.
type Factory func(d Deps) (API, error)

var (
	mu      sync.RWMutex
	factory Factory = httpFactory
	store   auth.Store
)

func httpFactory(d Deps) (API, error) {
	return api.New(api.Options{
		BaseURL: d.Config.BaseURL(),
		Timeout: d.Config.Timeout(),
		Tokens:  d.Tokens,
		Logger:  d.Logger,
	}), nil
}

// Register replaces the factory. Intended for tests; pair with Reset.
func Register(f Factory) {
	if f == nil {
		panic("backend: nil factory")
	}
	mu.Lock()
	defer mu.Unlock()
	factory = f
}

// UseStore replaces the credential store. Intended for tests; pair with
// Reset.
func UseStore(s auth.Store) {
	mu.Lock()
	defer mu.Unlock()
	store = s
}

// Reset restores the HTTP factory and the keychain store.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	factory = httpFactory
	store = nil
}

// Tokens returns the session token pair backed by the active store.
func Tokens() *auth.Tokens {
	mu.RLock()
	s := store
	mu.RUnlock()
	if s == nil {
		s = auth.DefaultStore()
	}
	return auth.NewTokens(s)
}

// Session bundles a configured client with the config and tokens it
// was built from.
type Session struct {
	Config *config.Config
	Tokens *auth.Tokens
	API    API
	Logger *zap.Logger
}

// Open loads the config and builds the API.
func Open(log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	tokens := Tokens()

	mu.RLock()
	f := factory
	mu.RUnlock()

	client, err := f(Deps{Config: cfg, Tokens: tokens, Logger: log})
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}
	return &Session{Config: cfg, Tokens: tokens, API: client, Logger: log}, nil
}

// RequireSession fails with domain.ErrUnauthorized when no token is
// stored.
func (s *Session) RequireSession() error {
	if !s.Tokens.HasSession() {
		return fmt.Errorf("not signed in, run `hirectl auth login`: %w", domain.ErrUnauthorized)
	}
	return nil
}
