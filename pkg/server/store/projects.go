package store

import (
	"context"
	"errors"
)

// ErrProjectNotFound is returned when no project matches an API key digest.
var ErrProjectNotFound = errors.New("project not found")

// ProjectsStore abstracts project and API key lookups for authentication.
type ProjectsStore interface {
	// FindProjectByKeyDigest resolves a hashed API key to its project id.
	// Returns ErrProjectNotFound if the digest is unknown.
	FindProjectByKeyDigest(ctx context.Context, keyDigest string) (string, error)

	// ProjectExists checks whether a project id exists.
	ProjectExists(ctx context.Context, projectID string) (bool, error)
}
