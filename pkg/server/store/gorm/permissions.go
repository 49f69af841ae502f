package gorm

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/model"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/store"
)

// Ensure PermissionsStore implements store.PermissionsStore
var _ store.PermissionsStore = (*PermissionsStore)(nil)

// PermissionsStore implements store.PermissionsStore using GORM
type PermissionsStore struct {
	db *gorm.DB
}

// NewPermissionsStore creates a new PermissionsStore
func NewPermissionsStore(db *gorm.DB) *PermissionsStore {
	return &PermissionsStore{db: db}
}

// FindBySlug returns the permission matching slug within the project.
func (s *PermissionsStore) FindBySlug(ctx context.Context, projectID, slug string) (*model.Permission, error) {
	var permission model.Permission
	tx := s.db.WithContext(ctx).
		Where("project_id = ? AND slug = ?", projectID, slug).
		First(&permission)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrPermissionNotFound
		}
		return nil, tx.Error
	}

	return &permission, nil
}

// RecordUsage bumps usage_count and stamps last_used_at in one update, so
// concurrent checks never lose increments to a read-modify-write race.
func (s *PermissionsStore) RecordUsage(ctx context.Context, permissionID int64, usedAt time.Time) error {
	return s.db.WithContext(ctx).Exec(`
		UPDATE permissions SET usage_count = usage_count + 1, last_used_at = ? WHERE id = ?
	`, usedAt, permissionID).Error
}
