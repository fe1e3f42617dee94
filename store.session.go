package main

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// SessionStoreProvider exposes the session state and transitions to
// every consumer of the storefront.
type SessionStoreProvider interface {
	Current() *Session
	IsAuthenticated() bool
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, password, email string) error
	Logout()
	Subscribe(fn func(*Session))
}

// SessionStore owns the current session cell. It is the only component
// allowed to mutate it. Consumers receive read-only copies and may
// subscribe to identity transitions.
type SessionStore struct {
	logger *zap.Logger
	vault  SessionVault
	client *BackendClient

	mu        sync.RWMutex
	current   *Session
	listeners []func(*Session)
}

// NewSessionStore builds the store and attempts to restore a previously
// persisted session from the vault. A record that fails to load or
// misses the bearer credential is treated as absent and purged.
func NewSessionStore(logger *zap.Logger, vault SessionVault, client *BackendClient) *SessionStore {
	ss := &SessionStore{
		logger: logger,
		vault:  vault,
		client: client,
	}
	ss.restore(context.Background())
	return ss
}

func (ss *SessionStore) restore(ctx context.Context) {
	session, err := ss.vault.Load(ctx)
	if errors.Is(err, ErrNoStoredSession) {
		return
	}
	if err != nil || !session.Valid() {
		ss.logger.Warn("session: discarding invalid persisted session", zap.Error(err))
		ss.purge(ctx)
		return
	}
	ss.current = &session
	ss.logger.Info("session: restored persisted session", zap.String("session.username", session.Username))
}

// Current returns a copy of the session, or nil when unauthenticated.
func (ss *SessionStore) Current() *Session {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	if ss.current == nil {
		return nil
	}
	session := *ss.current
	return &session
}

// IsAuthenticated reports whether a valid session is established.
func (ss *SessionStore) IsAuthenticated() bool {
	return ss.Current().Valid()
}

// Subscribe registers a listener invoked after every identity
// transition with the new session (nil on logout). Listeners run
// synchronously in the goroutine performing the transition.
func (ss *SessionStore) Subscribe(fn func(*Session)) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.listeners = append(ss.listeners, fn)
}

// Login exchanges credentials for a server issued session, persists it
// and adopts it as current. On failure the session is left absent, the
// vault purged, and an *AuthenticationError carrying the server
// message is returned.
func (ss *SessionStore) Login(ctx context.Context, username, password string) error {
	session, err := ss.client.Login(ctx, username, password)
	if err != nil {
		ss.logger.Warn("session: login failed", zap.String("session.username", username), zap.Error(err))
		ss.purge(ctx)
		ss.swap(nil)
		return &AuthenticationError{Err: err}
	}

	if err := ss.vault.Save(ctx, session); err != nil {
		// the in-memory session stays usable, only the restore on
		// next run is lost.
		ss.logger.Warn("session: failed to persist session", zap.Error(err))
	}
	ss.swap(&session)
	ss.logger.Info("session: logged in", zap.String("session.username", session.Username))
	return nil
}

// Register creates a new account without establishing a session. A
// backend rejection is reported as *RegistrationError carrying the
// server message; a transport failure propagates as *NetworkError.
func (ss *SessionStore) Register(ctx context.Context, username, password, email string) error {
	err := ss.client.Register(ctx, username, password, email)
	if err == nil {
		ss.logger.Info("session: account registered", zap.String("session.username", username))
		return nil
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return err
	}
	return &RegistrationError{Err: err}
}

// Logout unconditionally clears the in-memory session and purges the
// vault. It is synchronous and cannot fail.
func (ss *SessionStore) Logout() {
	ss.purge(context.Background())
	ss.swap(nil)
	ss.logger.Info("session: logged out")
}

// swap replaces the current session then notifies subscribers outside
// of the lock with their own copy.
func (ss *SessionStore) swap(session *Session) {
	ss.mu.Lock()
	ss.current = session
	listeners := make([]func(*Session), len(ss.listeners))
	copy(listeners, ss.listeners)
	ss.mu.Unlock()

	for _, fn := range listeners {
		if session == nil {
			fn(nil)
			continue
		}
		cp := *session
		fn(&cp)
	}
}

func (ss *SessionStore) purge(ctx context.Context) {
	if err := ss.vault.Delete(ctx); err != nil {
		ss.logger.Warn("session: failed to purge vault", zap.Error(err))
	}
}
