package db

import "context"

// SnapshotKey is the fixed durable key the whole session store is persisted
// under. Backends that address records by key (Postgres) use it verbatim.
const SnapshotKey = "db-findatime-sessions"

// Backend defines the durable storage operations the session store needs.
// The store always persists its complete state as one opaque snapshot, so
// backends only deal in whole-record load and save.
//
// Load returns ErrNoSnapshot when nothing has been persisted yet.
// Both the JSON-file filestore.Backend and the pgx-backed postgres.Backend
// implement this interface; tests use an in-memory fake.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, snapshot []byte) error
}
