// Package identity provides the authenticated project context for requests.
//
// The auth middleware resolves an API key or project token to a project and
// stores a typed Identity in the request context. Handlers retrieve it with
// Get; a handler that finds no identity treats the request as an internal
// defect rather than an authorization decision.
//
// # Basic Usage
//
//	// In the middleware, after validating the credential
//	ctx = identity.Set(ctx, &identity.Identity{ProjectID: projectID})
//
//	// In a handler
//	id, ok := identity.Get(r.Context())
//	if !ok {
//	    // 500: the middleware must run before this handler
//	}
package identity
