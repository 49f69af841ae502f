package store

import (
	"context"
	"errors"
	"time"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/grantkey"
)

// ErrGrantNotFound is returned by Find when no grant row matches.
var ErrGrantNotFound = errors.New("access grant not found")

// Grant is a store-level view of an access grant row. Only the fields the
// evaluator needs are surfaced; the grant key column stays behind the store.
type Grant struct {
	ProjectID string
	UserID    string
	ExpiresAt *time.Time
}

// GrantsStore abstracts access grant rows keyed by (project, user, grant
// key). All operations are scoped to a single project.
type GrantsStore interface {
	// Find returns the grant for (projectID, userID, key), or
	// ErrGrantNotFound. No side effects.
	Find(ctx context.Context, projectID, userID string, key grantkey.Key) (*Grant, error)

	// Upsert creates the grant or replaces its expiry, as one atomic
	// conflict-resolving write against the (project, user, key) uniqueness
	// constraint. A nil expiresAt clears any previous expiry.
	Upsert(ctx context.Context, projectID, userID string, key grantkey.Key, expiresAt *time.Time) error

	// Delete removes the grant. A missing row is a no-op success.
	Delete(ctx context.Context, projectID, userID string, key grantkey.Key) error
}
