// Package session owns the authenticated admin identity across process
// restarts.
//
// The persisted record is the sole source of truth: every mutation writes
// through to storage before updating memory, so a crash between the two can
// never leave memory authenticated while storage is empty, or re-authenticate
// silently on reload from state memory never held.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rouletteup/admin-console/internal/models"
	"github.com/rouletteup/admin-console/internal/storage"
)

// StorageKey is the well-known key the session record is persisted under.
const StorageKey = "admin_session"

// ErrInvalidSession is returned by SignIn for a structurally unusable session.
var ErrInvalidSession = errors.New("session: missing id or nickname")

// Manager holds the current authenticated identity and keeps it consistent
// with durable storage.
type Manager struct {
	store  storage.Store
	logger *slog.Logger

	mu      sync.Mutex
	current *models.Session
}

// NewManager creates a session manager backed by the given store.
func NewManager(store storage.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{store: store, logger: logger}
}

// Restore reads the persisted session at process start. An absent record
// starts the process unauthenticated without error. A present but malformed
// record (bad JSON, missing id or nickname) is deleted and likewise starts
// the process unauthenticated; a parse failure never surfaces to the caller.
func (m *Manager) Restore(ctx context.Context) error {
	raw, err := m.store.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("session: restore: %w", err)
	}

	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil || !s.Valid() {
		m.logger.Warn("Discarding malformed persisted session", "error", err)
		if err := m.store.Delete(ctx, StorageKey); err != nil {
			return fmt.Errorf("session: clear malformed record: %w", err)
		}
		return nil
	}

	m.mu.Lock()
	m.current = &s
	m.mu.Unlock()
	m.logger.Info("Session restored", "admin_id", s.ID, "nickname", s.Nickname)
	return nil
}

// SignIn persists the session, then transitions to authenticated state.
func (m *Manager) SignIn(ctx context.Context, s models.Session) error {
	if !s.Valid() {
		return ErrInvalidSession
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	// Write through before touching memory.
	if err := m.store.Put(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("session: persist: %w", err)
	}

	m.mu.Lock()
	m.current = &s
	m.mu.Unlock()
	m.logger.Info("Signed in", "admin_id", s.ID, "nickname", s.Nickname)
	return nil
}

// SignOut deletes the persisted session, then transitions to unauthenticated
// state.
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.store.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("session: delete: %w", err)
	}

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	m.logger.Info("Signed out")
	return nil
}

// Current returns the active session and whether one exists.
func (m *Manager) Current() (models.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return models.Session{}, false
	}
	return *m.current, true
}

// Authenticated reports whether a session is active.
func (m *Manager) Authenticated() bool {
	_, ok := m.Current()
	return ok
}
