// Package store provides storage abstractions for the access API server.
//
// This package defines interfaces for database operations, allowing the
// evaluator and server endpoints to be decoupled from the specific database
// implementation. This enables easier testing with mocks and potential
// support for different storage backends.
//
// # Available Stores
//
//   - PermissionsStore: permission lookup and usage accounting
//   - GrantsStore: access grant find/upsert/delete keyed by grant key
//   - ProjectsStore: API key to project resolution for authentication
//   - HealthStore: database connectivity checks
//
// # Usage
//
//	grants := gorm.NewGrantsStore(db)
//	grant, err := grants.Find(ctx, "project_test", "user_123", key)
//	if err != nil {
//	    if errors.Is(err, store.ErrGrantNotFound) {
//	        // Handle not found
//	    }
//	}
package store
