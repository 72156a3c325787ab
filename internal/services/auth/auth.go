// Package auth persists the session tokens issued by the hiring platform.
//
// Tokens live in the OS keychain under the "hirectl" service, keyed by
// "token" (the bearer access token) and "refreshToken".
package auth

import (
	"errors"
	"fmt"
	"strings"
)

const ServiceName = "hirectl"

// Keys under which the session tokens are stored.
const (
	KeyAccessToken  = "token"
	KeyRefreshToken = "refreshToken"
)

var ErrTokenNotFound = errors.New("auth token not found")

// Store is a small secret store keyed by name.
type Store interface {
	SetToken(key string, token string) error
	GetToken(key string) (string, error)
	DeleteToken(key string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeKey trims a key for consistent lookup. Case is preserved
// because "refreshToken" is stored in camel case.
func NormalizeKey(key string) string {
	return strings.TrimSpace(key)
}

// Tokens reads and writes the session token pair in a Store.
type Tokens struct {
	Store Store
}

// NewTokens wraps a Store. A nil store uses DefaultStore.
func NewTokens(store Store) *Tokens {
	if store == nil {
		store = DefaultStore()
	}
	return &Tokens{Store: store}
}

// AccessToken returns the stored bearer token.
func (t *Tokens) AccessToken() (string, error) {
	return t.Store.GetToken(KeyAccessToken)
}

// RefreshToken returns the stored refresh token.
func (t *Tokens) RefreshToken() (string, error) {
	return t.Store.GetToken(KeyRefreshToken)
}

// SaveTokens stores both tokens. An empty refresh token removes any
// previously stored one.
func (t *Tokens) SaveTokens(access, refresh string) error {
	if err := t.Store.SetToken(KeyAccessToken, access); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	if refresh == "" {
		if err := t.Store.DeleteToken(KeyRefreshToken); err != nil && !errors.Is(err, ErrTokenNotFound) {
			return fmt.Errorf("remove refresh token: %w", err)
		}
		return nil
	}
	if err := t.Store.SetToken(KeyRefreshToken, refresh); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

// ClearTokens removes both tokens. Missing tokens are not an error.
func (t *Tokens) ClearTokens() error {
	var errs []error
	for _, k := range []string{KeyAccessToken, KeyRefreshToken} {
		if err := t.Store.DeleteToken(k); err != nil && !errors.Is(err, ErrTokenNotFound) {
			errs = append(errs, fmt.Errorf("remove %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

// HasSession reports whether an access token is stored.
func (t *Tokens) HasSession() bool {
	tok, err := t.AccessToken()
	return err == nil && tok != ""
}
