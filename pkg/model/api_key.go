package model

import "time"

// APIKey stores the SHA-256 digest of a project API key. The plaintext key
// is shown once on creation and never persisted.
type APIKey struct {
	KeyDigest string    `gorm:"column:key_digest;primaryKey"`
	ProjectID string    `gorm:"column:project_id;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (APIKey) TableName() string {
	return "api_keys"
}
