package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Error taxonomy shared by repositories and services. Lookup misses are NOT
// errors — reads of a missing path leave dest untouched and repositories
// return a nil entity for them.
var (
	// ErrAlreadyExists signals a uniqueness violation (duplicate registration).
	ErrAlreadyExists = errors.New("entity already exists")
	// ErrTaskFailed wraps an underlying store failure (network, permission).
	ErrTaskFailed = errors.New("store operation failed")
	// ErrNilRecord signals a record that an invariant says cannot be nil.
	ErrNilRecord = errors.New("illegal nil record")
)

// Store is the document-store contract the whole service is written against.
// Paths are slash-separated ("users/<uid>", "user_groups/<uid>/<gid>").
type Store interface {
	// Get reads the value at path into dest. A missing path is not an
	// error: dest is left at its zero value.
	Get(ctx context.Context, path string, dest interface{}) error

	// Set writes value at path, replacing whatever was there.
	Set(ctx context.Context, path string, value interface{}) error

	// Delete removes the subtree at path. Deleting a missing path is a no-op.
	Delete(ctx context.Context, path string) error

	// Update applies several writes in one call; a nil value deletes that
	// path. Backends apply the batch atomically where they can (Realtime
	// Database multi-path updates are atomic).
	Update(ctx context.Context, values map[string]interface{}) error

	// Query returns the children of path whose field equals value, decoded
	// into dest (a *map[string]T). Equality filters only — no ranges, no
	// joins.
	Query(ctx context.Context, path, field string, value interface{}, dest interface{}) error
}

// NewKey generates a push key for a new record. It is the only way records
// get identifiers; it fails only if the platform cannot produce randomness.
func NewKey() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
