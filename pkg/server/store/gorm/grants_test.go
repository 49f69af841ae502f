package gorm

import (
	"context"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/grantkey"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/store"
)

func idKey() grantkey.Key {
	return grantkey.Key{Mode: grantkey.ModePermissionID, Value: int64(42)}
}

func (s *Suite) TestGrantsFind() {
	expiresAt := time.Date(2027, 1, 2, 15, 4, 5, 0, time.UTC)

	s.mock.ExpectQuery(`SELECT expires_at FROM access_grants WHERE project_id = \$1 AND user_id = \$2 AND permission_id = \$3`).
		WithArgs("t1", "user_123", int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"expires_at"}).AddRow(expiresAt))

	grant, err := NewGrantsStore(s.DB).Find(context.Background(), "t1", "user_123", idKey())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "t1", grant.ProjectID)
	assert.Equal(s.T(), "user_123", grant.UserID)
	require.NotNil(s.T(), grant.ExpiresAt)
	assert.True(s.T(), grant.ExpiresAt.Equal(expiresAt))
}

func (s *Suite) TestGrantsFindNoExpiry() {
	s.mock.ExpectQuery(`SELECT expires_at FROM access_grants`).
		WithArgs("t1", "user_123", int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"expires_at"}).AddRow(nil))

	grant, err := NewGrantsStore(s.DB).Find(context.Background(), "t1", "user_123", idKey())
	require.NoError(s.T(), err)
	assert.Nil(s.T(), grant.ExpiresAt)
}

func (s *Suite) TestGrantsFindMissing() {
	s.mock.ExpectQuery(`SELECT expires_at FROM access_grants`).
		WithArgs("t1", "user_123", int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"expires_at"}))

	_, err := NewGrantsStore(s.DB).Find(context.Background(), "t1", "user_123", idKey())
	assert.ErrorIs(s.T(), err, store.ErrGrantNotFound)
}

func (s *Suite) TestGrantsFindSlugMode() {
	key := grantkey.Key{Mode: grantkey.ModePermissionSlug, Value: "course_ultra"}

	s.mock.ExpectQuery(`SELECT expires_at FROM access_grants WHERE project_id = \$1 AND user_id = \$2 AND permission_slug = \$3`).
		WithArgs("t1", "user_123", "course_ultra").
		WillReturnRows(sqlmock.NewRows([]string{"expires_at"}).AddRow(nil))

	grant, err := NewGrantsStore(s.DB).Find(context.Background(), "t1", "user_123", key)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "user_123", grant.UserID)
}

func (s *Suite) TestGrantsUpsert() {
	expiresAt := time.Date(2027, 1, 2, 15, 4, 5, 0, time.UTC)

	s.mock.ExpectExec(`(?s)INSERT INTO access_grants \(project_id, user_id, permission_id, expires_at\).*ON CONFLICT \(project_id, user_id, permission_id\) DO UPDATE SET expires_at = EXCLUDED\.expires_at`).
		WithArgs("t1", "user_123", int64(42), expiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewGrantsStore(s.DB).Upsert(context.Background(), "t1", "user_123", idKey(), &expiresAt)
	require.NoError(s.T(), err)
}

func (s *Suite) TestGrantsUpsertNoExpiry() {
	s.mock.ExpectExec(`(?s)INSERT INTO access_grants.*ON CONFLICT`).
		WithArgs("t1", "user_123", int64(42), nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewGrantsStore(s.DB).Upsert(context.Background(), "t1", "user_123", idKey(), nil)
	require.NoError(s.T(), err)
}

func (s *Suite) TestGrantsDelete() {
	s.mock.ExpectExec(`DELETE FROM access_grants WHERE project_id = \$1 AND user_id = \$2 AND permission_id = \$3`).
		WithArgs("t1", "user_123", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewGrantsStore(s.DB).Delete(context.Background(), "t1", "user_123", idKey())
	require.NoError(s.T(), err)
}

func (s *Suite) TestGrantsDeleteAbsent() {
	s.mock.ExpectExec(`DELETE FROM access_grants`).
		WithArgs("t1", "user_123", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewGrantsStore(s.DB).Delete(context.Background(), "t1", "user_123", idKey())
	require.NoError(s.T(), err)
}
