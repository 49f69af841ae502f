package grantkey

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrSchemaMismatch means the access_grants table has none of the recognized
// grant key columns. This is a deployment defect, not a transient fault: the
// engine refuses every request until the schema is corrected.
var ErrSchemaMismatch = errors.New("access_grants has no recognized grant key column")

// SchemaProbe lists the column names of the access_grants table.
type SchemaProbe interface {
	GrantTableColumns(ctx context.Context) ([]string, error)
}

// Resolver determines the grant key mode at most once per process. All
// concurrent first callers observe a single schema inspection; after the
// first conclusive outcome the resolver is read-only.
type Resolver struct {
	probe SchemaProbe

	mu       sync.Mutex
	resolved bool
	mode     Mode
	fatal    error
}

// NewResolver creates a Resolver over the given schema probe.
func NewResolver(probe SchemaProbe) *Resolver {
	return &Resolver{probe: probe}
}

// Resolve returns the process-wide grant key mode, inspecting the schema on
// first use. A schema with no recognized column is terminal and memoized; a
// probe failure (connectivity) is returned without being memoized so a later
// caller retries once the store is reachable again.
func (r *Resolver) Resolve(ctx context.Context) (Mode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.resolved {
		return r.mode, nil
	}
	if r.fatal != nil {
		return 0, r.fatal
	}

	cols, err := r.probe.GrantTableColumns(ctx)
	if err != nil {
		return 0, fmt.Errorf("inspecting access_grants schema: %w", err)
	}

	present := make(map[string]bool, len(cols))
	for _, c := range cols {
		present[c] = true
	}

	for _, m := range preferred {
		if present[m.Column()] {
			r.mode = m
			r.resolved = true
			return m, nil
		}
	}

	r.fatal = ErrSchemaMismatch
	return 0, r.fatal
}
