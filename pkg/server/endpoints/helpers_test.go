package endpoints

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/access"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/grantkey"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/identity"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/store"
)

// newTestEvaluator builds an evaluator over mock stores with the
// permission_id grant key shape resolved.
func newTestEvaluator(permissions store.PermissionsStore, grants store.GrantsStore) *access.Evaluator {
	keys := grantkey.NewResolver(staticProbe{columns: []string{"project_id", "user_id", "permission_id", "expires_at"}})
	return access.NewEvaluator(permissions, grants, keys)
}

// requestWithProject builds a JSON request carrying a project identity, as
// the auth middleware would have left it.
func requestWithProject(method, target, body, projectID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if projectID != "" {
		ctx := identity.Set(req.Context(), &identity.Identity{ProjectID: projectID})
		req = req.WithContext(ctx)
	}
	return req
}
