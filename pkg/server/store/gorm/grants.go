package gorm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/grantkey"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/store"
)

// Ensure GrantsStore implements store.GrantsStore
var _ store.GrantsStore = (*GrantsStore)(nil)

// GrantsStore implements store.GrantsStore using GORM. The grant key column
// is interpolated from the closed grantkey.Mode enumeration, never from
// caller input.
type GrantsStore struct {
	db *gorm.DB
}

// NewGrantsStore creates a new GrantsStore
func NewGrantsStore(db *gorm.DB) *GrantsStore {
	return &GrantsStore{db: db}
}

// Find returns the grant for (projectID, userID, key), or ErrGrantNotFound.
func (s *GrantsStore) Find(ctx context.Context, projectID, userID string, key grantkey.Key) (*store.Grant, error) {
	query := fmt.Sprintf(`
		SELECT expires_at FROM access_grants WHERE project_id = ? AND user_id = ? AND %s = ?
	`, key.Mode.Column())

	row := s.db.WithContext(ctx).Raw(query, projectID, userID, key.Value).Row()

	var expiresAt sql.NullTime
	if err := row.Scan(&expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrGrantNotFound
		}
		return nil, err
	}

	grant := &store.Grant{ProjectID: projectID, UserID: userID}
	if expiresAt.Valid {
		t := expiresAt.Time
		grant.ExpiresAt = &t
	}
	return grant, nil
}

// Upsert creates the grant or replaces its expiry. The write is a single
// conflict-resolving insert against the (project_id, user_id, key column)
// uniqueness constraint; concurrent grants for the same tuple cannot produce
// two rows or a duplicate-key failure.
func (s *GrantsStore) Upsert(ctx context.Context, projectID, userID string, key grantkey.Key, expiresAt *time.Time) error {
	query := fmt.Sprintf(`
		INSERT INTO access_grants (project_id, user_id, %[1]s, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (project_id, user_id, %[1]s) DO UPDATE SET expires_at = EXCLUDED.expires_at
	`, key.Mode.Column())

	return s.db.WithContext(ctx).Exec(query, projectID, userID, key.Value, expiresAt).Error
}

// Delete removes the grant. Deleting an absent row is a no-op success.
func (s *GrantsStore) Delete(ctx context.Context, projectID, userID string, key grantkey.Key) error {
	query := fmt.Sprintf(`
		DELETE FROM access_grants WHERE project_id = ? AND user_id = ? AND %s = ?
	`, key.Mode.Column())

	return s.db.WithContext(ctx).Exec(query, projectID, userID, key.Value).Error
}
