package access

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/grantkey"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/model"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/store"
)

// Evaluator answers check/grant/revoke requests for one deployment. It holds
// no mutable state of its own; the grant key resolver carries the only
// process-wide cache.
type Evaluator struct {
	permissions store.PermissionsStore
	grants      store.GrantsStore
	keys        *grantkey.Resolver

	// now is swapped out by tests to pin the evaluation instant.
	now func() time.Time
}

// NewEvaluator creates an Evaluator over the given stores.
func NewEvaluator(permissions store.PermissionsStore, grants store.GrantsStore, keys *grantkey.Resolver) *Evaluator {
	return &Evaluator{
		permissions: permissions,
		grants:      grants,
		keys:        keys,
		now:         time.Now,
	}
}

// Check reports whether userID currently holds the permission named by slug
// within the project. A disabled permission denies before any grant lookup.
// A grant with expires_at at or before the evaluation instant is expired.
// On an allow, the permission's usage counters are updated as a side effect.
func (e *Evaluator) Check(ctx context.Context, projectID, userID, slug string) (bool, error) {
	permission, err := e.resolvePermission(ctx, projectID, slug)
	if err != nil {
		return false, err
	}

	if !permission.Enabled {
		return false, nil
	}

	key, err := e.grantKey(ctx, permission)
	if err != nil {
		return false, err
	}

	grant, err := e.grants.Find(ctx, projectID, userID, key)
	if err != nil {
		if errors.Is(err, store.ErrGrantNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("looking up grant: %w", err)
	}

	now := e.now()
	if grant.ExpiresAt != nil && !grant.ExpiresAt.After(now) {
		return false, nil
	}

	if err := e.permissions.RecordUsage(ctx, permission.ID, now); err != nil {
		// Accounting is best-effort; an allow never flips to a deny because
		// the counter update failed.
		log.Printf("access: recording usage for permission %d: %v", permission.ID, err)
	}

	return true, nil
}

// Grant creates or refreshes the grant for (project, user, permission). A
// repeated grant replaces the expiry, including clearing it when expiresAt
// is nil. The permission's enabled flag is not consulted: disabling is a
// check-time toggle, and a grant on a disabled permission stays inert until
// the permission is re-enabled.
func (e *Evaluator) Grant(ctx context.Context, projectID, userID, slug string, expiresAt *time.Time) error {
	permission, err := e.resolvePermission(ctx, projectID, slug)
	if err != nil {
		return err
	}

	key, err := e.grantKey(ctx, permission)
	if err != nil {
		return err
	}

	if err := e.grants.Upsert(ctx, projectID, userID, key, expiresAt); err != nil {
		return fmt.Errorf("upserting grant: %w", err)
	}
	return nil
}

// Revoke deletes the grant for (project, user, permission). Revoking an
// absent grant succeeds.
func (e *Evaluator) Revoke(ctx context.Context, projectID, userID, slug string) error {
	permission, err := e.resolvePermission(ctx, projectID, slug)
	if err != nil {
		return err
	}

	key, err := e.grantKey(ctx, permission)
	if err != nil {
		return err
	}

	if err := e.grants.Delete(ctx, projectID, userID, key); err != nil {
		return fmt.Errorf("deleting grant: %w", err)
	}
	return nil
}

func (e *Evaluator) resolvePermission(ctx context.Context, projectID, slug string) (*model.Permission, error) {
	permission, err := e.permissions.FindBySlug(ctx, projectID, slug)
	if err != nil {
		if errors.Is(err, store.ErrPermissionNotFound) {
			return nil, badRequestf("unknown permission: %s", slug)
		}
		return nil, fmt.Errorf("resolving permission: %w", err)
	}
	return permission, nil
}

func (e *Evaluator) grantKey(ctx context.Context, permission *model.Permission) (grantkey.Key, error) {
	mode, err := e.keys.Resolve(ctx)
	if err != nil {
		return grantkey.Key{}, err
	}
	return mode.KeyFor(permission), nil
}
