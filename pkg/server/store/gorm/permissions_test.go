package gorm

import (
	"context"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/store"
)

func (s *Suite) TestPermissionsFindBySlug() {
	rows := sqlmock.NewRows([]string{"id", "project_id", "slug", "enabled", "usage_count"}).
		AddRow(int64(42), "t1", "course_ultra", true, int64(9))

	s.mock.ExpectQuery(`SELECT \* FROM "permissions" WHERE project_id = \$1 AND slug = \$2`).
		WillReturnRows(rows)

	permission, err := NewPermissionsStore(s.DB).FindBySlug(context.Background(), "t1", "course_ultra")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(42), permission.ID)
	assert.Equal(s.T(), "t1", permission.ProjectID)
	assert.Equal(s.T(), "course_ultra", permission.Slug)
	assert.True(s.T(), permission.Enabled)
	assert.Equal(s.T(), int64(9), permission.UsageCount)
	assert.Nil(s.T(), permission.LastUsedAt)
}

func (s *Suite) TestPermissionsFindBySlugMissing() {
	s.mock.ExpectQuery(`SELECT \* FROM "permissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "slug", "enabled", "usage_count"}))

	_, err := NewPermissionsStore(s.DB).FindBySlug(context.Background(), "t1", "nope")
	assert.ErrorIs(s.T(), err, store.ErrPermissionNotFound)
}

func (s *Suite) TestPermissionsRecordUsage() {
	usedAt := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	s.mock.ExpectExec(`UPDATE permissions SET usage_count = usage_count \+ 1, last_used_at = \$1 WHERE id = \$2`).
		WithArgs(usedAt, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewPermissionsStore(s.DB).RecordUsage(context.Background(), 42, usedAt)
	require.NoError(s.T(), err)
}
