package model

import "time"

// Permission is a named capability within a project. The core never creates
// permissions at request time; it reads them and bumps the usage counters.
type Permission struct {
	ID         int64      `gorm:"column:id;primaryKey"`
	ProjectID  string     `gorm:"column:project_id;not null"`
	Slug       string     `gorm:"column:slug;not null"`
	Enabled    bool       `gorm:"column:enabled;not null"`
	UsageCount int64      `gorm:"column:usage_count;not null"`
	LastUsedAt *time.Time `gorm:"column:last_used_at"`
}

func (Permission) TableName() string {
	return "permissions"
}
