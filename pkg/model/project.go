package model

import "time"

// Project is the unit of tenant isolation. All other entities belong to
// exactly one project.
type Project struct {
	ProjectID string    `gorm:"column:project_id;primaryKey"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Project) TableName() string {
	return "projects"
}
