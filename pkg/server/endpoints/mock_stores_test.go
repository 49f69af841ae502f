package endpoints

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/grantkey"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/model"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/store"
)

// MockPermissionsStore implements store.PermissionsStore for testing using testify/mock
type MockPermissionsStore struct {
	mock.Mock
}

func NewMockPermissionsStore() *MockPermissionsStore {
	return &MockPermissionsStore{}
}

func (m *MockPermissionsStore) FindBySlug(ctx context.Context, projectID, slug string) (*model.Permission, error) {
	args := m.Called(projectID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Permission), args.Error(1)
}

func (m *MockPermissionsStore) RecordUsage(ctx context.Context, permissionID int64, usedAt time.Time) error {
	args := m.Called(permissionID, usedAt)
	return args.Error(0)
}

// MockGrantsStore implements store.GrantsStore for testing using testify/mock
type MockGrantsStore struct {
	mock.Mock
}

func NewMockGrantsStore() *MockGrantsStore {
	return &MockGrantsStore{}
}

func (m *MockGrantsStore) Find(ctx context.Context, projectID, userID string, key grantkey.Key) (*store.Grant, error) {
	args := m.Called(projectID, userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Grant), args.Error(1)
}

func (m *MockGrantsStore) Upsert(ctx context.Context, projectID, userID string, key grantkey.Key, expiresAt *time.Time) error {
	args := m.Called(projectID, userID, key, expiresAt)
	return args.Error(0)
}

func (m *MockGrantsStore) Delete(ctx context.Context, projectID, userID string, key grantkey.Key) error {
	args := m.Called(projectID, userID, key)
	return args.Error(0)
}

// MockProjectsStore implements store.ProjectsStore for testing using testify/mock
type MockProjectsStore struct {
	mock.Mock
}

func NewMockProjectsStore() *MockProjectsStore {
	return &MockProjectsStore{}
}

func (m *MockProjectsStore) FindProjectByKeyDigest(ctx context.Context, keyDigest string) (string, error) {
	args := m.Called(keyDigest)
	return args.String(0), args.Error(1)
}

func (m *MockProjectsStore) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	args := m.Called(projectID)
	return args.Bool(0), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity(ctx context.Context) error {
	args := m.Called()
	return args.Error(0)
}

// staticProbe implements grantkey.SchemaProbe with a fixed column set.
type staticProbe struct {
	columns []string
}

func (p staticProbe) GrantTableColumns(ctx context.Context) ([]string, error) {
	return p.columns, nil
}
