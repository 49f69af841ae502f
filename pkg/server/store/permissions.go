package store

import (
	"context"
	"errors"
	"time"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/model"
)

// ErrPermissionNotFound is returned when no permission matches a slug within
// a project.
var ErrPermissionNotFound = errors.New("permission not found")

// PermissionsStore abstracts permission catalog lookups and usage accounting.
type PermissionsStore interface {
	// FindBySlug returns the permission matching slug within the project.
	// Returns ErrPermissionNotFound if no row matches. The enabled flag is
	// not considered here; callers decide what to do with it.
	FindBySlug(ctx context.Context, projectID, slug string) (*model.Permission, error)

	// RecordUsage increments the permission's usage_count and sets
	// last_used_at to usedAt, as a single store-side update.
	RecordUsage(ctx context.Context, permissionID int64, usedAt time.Time) error
}
