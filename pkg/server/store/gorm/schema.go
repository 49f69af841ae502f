package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/grantkey"
)

// Ensure SchemaStore implements grantkey.SchemaProbe
var _ grantkey.SchemaProbe = (*SchemaStore)(nil)

// SchemaStore inspects the live database schema for grant key resolution.
type SchemaStore struct {
	db *gorm.DB
}

// NewSchemaStore creates a new SchemaStore
func NewSchemaStore(db *gorm.DB) *SchemaStore {
	return &SchemaStore{db: db}
}

// GrantTableColumns lists the column names of the access_grants table.
func (s *SchemaStore) GrantTableColumns(ctx context.Context) ([]string, error) {
	var columns []string
	tx := s.db.WithContext(ctx).Raw(`
		SELECT column_name FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = 'access_grants'
	`).Scan(&columns)
	return columns, tx.Error
}
