package gorm

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/store"
)

// Ensure ProjectsStore implements store.ProjectsStore
var _ store.ProjectsStore = (*ProjectsStore)(nil)

// ProjectsStore implements store.ProjectsStore using GORM
type ProjectsStore struct {
	db *gorm.DB
}

// NewProjectsStore creates a new ProjectsStore
func NewProjectsStore(db *gorm.DB) *ProjectsStore {
	return &ProjectsStore{db: db}
}

// FindProjectByKeyDigest resolves a hashed API key to its project id.
func (s *ProjectsStore) FindProjectByKeyDigest(ctx context.Context, keyDigest string) (string, error) {
	var projectID string
	row := s.db.WithContext(ctx).Raw(`
		SELECT project_id FROM api_keys WHERE key_digest = ?
	`, keyDigest).Row()
	if err := row.Scan(&projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", store.ErrProjectNotFound
		}
		return "", err
	}

	return projectID, nil
}

// ProjectExists checks whether a project id exists.
func (s *ProjectsStore) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	var count int64
	tx := s.db.WithContext(ctx).Raw(`
		SELECT count(*) FROM projects WHERE project_id = ?
	`, projectID).Scan(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}
