package identity

import (
	"context"
	"net"
	"time"
)

// contextKey is an unexported type for context keys to avoid collisions.
type contextKey struct{}

var key contextKey

// Identity is the authenticated project context for a request. The auth
// middleware constructs it after validating an API key or project token;
// handlers read it back with Get. It is never inferred or cast at the point
// of use from loosely-typed request fields.
type Identity struct {
	// ProjectID is the validated tenant identifier.
	ProjectID string

	// AuthenticatedAt is when the middleware validated the credential.
	AuthenticatedAt time.Time

	// RemoteIP is the client IP address, when derivable.
	RemoteIP net.IP
}

// WithRemoteIP sets the remote IP address.
func (i *Identity) WithRemoteIP(ip net.IP) *Identity {
	i.RemoteIP = ip
	return i
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, key, id)
}
