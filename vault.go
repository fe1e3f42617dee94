package main

import "context"

// SessionVault is the durable local storage holding the persisted
// session between runs. The stored copy is a cache: once loaded, the
// in-memory session owned by the SessionStore wins. Save writes both
// the full session record and the legacy token entry; Delete clears
// both together.
type SessionVault interface {
	Save(ctx context.Context, session Session) error
	Load(ctx context.Context) (Session, error)
	Delete(ctx context.Context) error
}

const (
	// SessionRecordKey stores the full session as JSON.
	SessionRecordKey = "user"
	// LegacyTokenKey duplicates the bearer credential for older
	// collaborators that look the token up directly.
	LegacyTokenKey = "token"
)
