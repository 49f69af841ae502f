package gorm

import (
	"context"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/store"
)

func (s *Suite) TestProjectsFindByKeyDigest() {
	s.mock.ExpectQuery(`SELECT project_id FROM api_keys WHERE key_digest = \$1`).
		WithArgs("abc123").
		WillReturnRows(sqlmock.NewRows([]string{"project_id"}).AddRow("t1"))

	projectID, err := NewProjectsStore(s.DB).FindProjectByKeyDigest(context.Background(), "abc123")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "t1", projectID)
}

func (s *Suite) TestProjectsFindByKeyDigestMissing() {
	s.mock.ExpectQuery(`SELECT project_id FROM api_keys`).
		WithArgs("abc123").
		WillReturnRows(sqlmock.NewRows([]string{"project_id"}))

	_, err := NewProjectsStore(s.DB).FindProjectByKeyDigest(context.Background(), "abc123")
	assert.ErrorIs(s.T(), err, store.ErrProjectNotFound)
}

func (s *Suite) TestProjectExists() {
	s.mock.ExpectQuery(`SELECT count\(\*\) FROM projects WHERE project_id = \$1`).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	exists, err := NewProjectsStore(s.DB).ProjectExists(context.Background(), "t1")
	require.NoError(s.T(), err)
	assert.True(s.T(), exists)
}

func (s *Suite) TestProjectExistsMissing() {
	s.mock.ExpectQuery(`SELECT count\(\*\) FROM projects`).
		WithArgs("t2").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	exists, err := NewProjectsStore(s.DB).ProjectExists(context.Background(), "t2")
	require.NoError(s.T(), err)
	assert.False(s.T(), exists)
}

func (s *Suite) TestSchemaGrantTableColumns() {
	rows := sqlmock.NewRows([]string{"column_name"}).
		AddRow("project_id").
		AddRow("user_id").
		AddRow("permission_id").
		AddRow("expires_at")

	s.mock.ExpectQuery(`SELECT column_name FROM information_schema\.columns`).
		WillReturnRows(rows)

	columns, err := NewSchemaStore(s.DB).GrantTableColumns(context.Background())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"project_id", "user_id", "permission_id", "expires_at"}, columns)
}

func (s *Suite) TestHealthCheckConnectivity() {
	s.mock.ExpectQuery(`SELECT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	err := NewHealthStore(s.DB).CheckConnectivity(context.Background())
	require.NoError(s.T(), err)
}
