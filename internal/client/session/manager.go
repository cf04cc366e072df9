// Package session tracks the logged-in identity. There are exactly two
// states: logged out, or logged in as one user. The identity is persisted
// so a restart resumes the previous session.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/craftedwonders/storefront/internal/client/models"
	"github.com/craftedwonders/storefront/internal/client/repositories/metadata"
	"github.com/craftedwonders/storefront/internal/logging"
)

const currentUserKey = "currentUser"

type Manager struct {
	meta metadata.Repository
	log  logging.Logger
	user *models.User

	// now is a test seam for the token expiry check.
	now func() time.Time
}

func NewManager(meta metadata.Repository, log logging.Logger) *Manager {
	return &Manager{meta: meta, log: log, now: time.Now}
}

// Current returns the active identity, or nil when logged out.
func (m *Manager) Current() *models.User {
	return m.user
}

func (m *Manager) LoggedIn() bool {
	return m.user != nil
}

// Login makes user the active identity and persists it. Logging in while
// already logged in replaces the identity outright.
func (m *Manager) Login(ctx context.Context, user models.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := m.meta.Set(ctx, currentUserKey, b); err != nil {
		return err
	}
	m.user = &user
	return nil
}

// Logout clears the active identity and its persisted copy.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.meta.Delete(ctx, currentUserKey); err != nil {
		return err
	}
	m.user = nil
	return nil
}

// Restore loads the persisted identity at startup. A missing or unreadable
// record, or a token whose expiry has passed, restores to logged out;
// none of these are errors.
func (m *Manager) Restore(ctx context.Context) *models.User {
	b, err := m.meta.Get(ctx, currentUserKey)
	if err != nil {
		m.log.Warn(ctx, "reading persisted session failed", "error", err)
		return nil
	}
	if b == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(b, &user); err != nil {
		m.log.Warn(ctx, "persisted session unreadable, discarding", "error", err)
		_ = m.meta.Delete(ctx, currentUserKey)
		return nil
	}

	if m.tokenExpired(user.Token) {
		m.log.Info(ctx, "persisted session expired", "email", user.Email)
		_ = m.meta.Delete(ctx, currentUserKey)
		return nil
	}

	m.user = &user
	return m.user
}

// tokenExpired checks the exp claim without verifying the signature; the
// client only wants to avoid restoring a session the server would reject.
// Tokens that are not JWTs or carry no exp claim pass through.
func (m *Manager) tokenExpired(token string) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(m.now())
}
