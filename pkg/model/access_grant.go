package model

import "time"

// AccessGrant authorizes a user for a permission within a project. At most
// one row exists per (project_id, user_id, grant key); a NULL ExpiresAt
// means the grant never expires.
//
// The grant key column is schema-dependent (permission_id, permission_slug
// or resource), so the store layer addresses it through pkg/grantkey rather
// than through this model. PermissionID maps the column shipped by our own
// migrations.
type AccessGrant struct {
	ProjectID    string     `gorm:"column:project_id;not null"`
	UserID       string     `gorm:"column:user_id;not null"`
	PermissionID int64      `gorm:"column:permission_id"`
	ExpiresAt    *time.Time `gorm:"column:expires_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (AccessGrant) TableName() string {
	return "access_grants"
}
