// Package session manages the client-side session token: one named slot of
// durable storage holding the raw token string, plus helpers to decode its
// claims for display.
package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/claranceatgalvanize/embridge/internal/auth/token"
)

// Store is the durable slot behind the Manager.
type Store interface {
	// Load returns the stored token, or "" when the slot is empty.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Manager caches the session token and answers login-state questions.
// It never talks to the network; the api client feeds it tokens.
type Manager struct {
	mu     sync.Mutex
	store  Store
	cached string
	loaded bool
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Save persists the token to the slot and caches it.
func (m *Manager) Save(raw string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(raw); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	m.cached = raw
	m.loaded = true
	return nil
}

// Token returns the cached token, lazily reloading from the slot the first
// time. An empty string means logged out.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token()
}

func (m *Manager) token() string {
	if !m.loaded {
		raw, err := m.store.Load()
		if err == nil {
			m.cached = raw
		}
		m.loaded = true
	}
	return m.cached
}

// UserDetails decodes the claims segment of the stored token WITHOUT
// verifying the signature. This is a display-time read, not a trust
// boundary: authorization decisions happen server-side in token.Verify.
// Returns nil when no token is present.
func (m *Manager) UserDetails() *token.Claims {
	m.mu.Lock()
	raw := m.token()
	m.mu.Unlock()

	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil
	}

	var claims token.Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil
	}
	return &claims
}

// IsLoggedIn reports whether a token is present and its embedded expiry is
// strictly in the future.
func (m *Manager) IsLoggedIn() bool {
	claims := m.UserDetails()
	if claims == nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.After(time.Now())
}

// Logout clears both the cache and the durable slot.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cached = ""
	m.loaded = true
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
