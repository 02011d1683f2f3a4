// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session persists the single active client session in a
// [store.KeyValueStore] under fixed keys.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/gmc-client/internal/store"
	"github.com/MKhiriev/gmc-client/models"
)

// Keys the session occupies in the store.
const (
	KeyUserID      = "userId"
	KeyToken       = "token"
	KeyMfaRequired = "mfaRequired"
)

// Manager reads and writes the session. It holds no state of its own, so
// every read reflects the store at the moment of the call.
type Manager struct {
	store store.KeyValueStore
}

// NewManager returns a Manager on top of s.
func NewManager(s store.KeyValueStore) *Manager {
	return &Manager{store: s}
}

// Save writes all three keys.
func (m *Manager) Save(ctx context.Context, s models.Session) error {
	if err := m.store.Set(ctx, KeyUserID, s.UserID); err != nil {
		return fmt.Errorf("save session user id: %w", err)
	}
	if err := m.store.Set(ctx, KeyToken, s.Token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	if err := m.store.Set(ctx, KeyMfaRequired, strconv.FormatBool(s.MfaPending)); err != nil {
		return fmt.Errorf("save session mfa flag: %w", err)
	}
	return nil
}

// Load returns the stored session. ok is false when no token is stored.
// A missing or malformed mfa flag reads as false.
func (m *Manager) Load(ctx context.Context) (models.Session, bool, error) {
	token, ok, err := m.store.Get(ctx, KeyToken)
	if err != nil {
		return models.Session{}, false, fmt.Errorf("load session token: %w", err)
	}
	if !ok {
		return models.Session{}, false, nil
	}

	userID, _, err := m.store.Get(ctx, KeyUserID)
	if err != nil {
		return models.Session{}, false, fmt.Errorf("load session user id: %w", err)
	}

	mfa, _, err := m.store.Get(ctx, KeyMfaRequired)
	if err != nil {
		return models.Session{}, false, fmt.Errorf("load session mfa flag: %w", err)
	}
	pending, _ := strconv.ParseBool(mfa)

	return models.Session{UserID: userID, Token: token, MfaPending: pending}, true, nil
}

// Token returns the stored token, or "" when there is none. It satisfies the
// adapter's token source.
func (m *Manager) Token(ctx context.Context) (string, error) {
	token, _, err := m.store.Get(ctx, KeyToken)
	if err != nil {
		return "", fmt.Errorf("load session token: %w", err)
	}
	return token, nil
}

// UserID returns the stored user id. ok is false when it is absent.
func (m *Manager) UserID(ctx context.Context) (string, bool, error) {
	id, ok, err := m.store.Get(ctx, KeyUserID)
	if err != nil {
		return "", false, fmt.Errorf("load session user id: %w", err)
	}
	return id, ok, nil
}

// IsLoggedIn reports whether a token is currently stored. Store errors read
// as logged out.
func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	_, ok, err := m.store.Get(ctx, KeyToken)
	return err == nil && ok
}

// Clear removes all three keys. Clearing an empty session is a no-op.
func (m *Manager) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range []string{KeyUserID, KeyToken, KeyMfaRequired} {
		if err := m.store.Remove(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}
