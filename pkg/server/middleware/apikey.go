// Package middleware provides the request authentication middleware for the
// access API.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/apikey"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/config"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/identity"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/token"
)

var tokenRegex = regexp.MustCompile(`^Token token="(.*)"$`)

// APIKeyAuthenticator validates the Authorization header and attaches the
// resolved project identity to the request context. Handlers behind it never
// run for an unauthenticated request.
type APIKeyAuthenticator struct {
	Projects store.ProjectsStore
	Tokens   *token.Issuer
}

// NewAPIKeyAuthenticator creates the middleware. tokens may be nil, in which
// case only raw API keys are accepted.
func NewAPIKeyAuthenticator(projects store.ProjectsStore, tokens *token.Issuer) *APIKeyAuthenticator {
	return &APIKeyAuthenticator{Projects: projects, Tokens: tokens}
}

// Middleware returns an HTTP middleware that authenticates requests.
// Accepted header forms: `Bearer <api-key-or-token>` and
// `Token token="<api-key-or-token>"`.
func (a *APIKeyAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		credential, ok := credentialFromHeader(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w, "missing API key")
			return
		}

		projectID, err := a.resolveProject(r.Context(), credential)
		if err != nil {
			if isCredentialFailure(err) {
				unauthorized(w, "invalid API key")
				return
			}
			// Store trouble is not the caller's fault; do not report it as
			// an authentication verdict.
			respondWith(w, http.StatusInternalServerError, "internal error")
			return
		}

		id := &identity.Identity{
			ProjectID:       projectID,
			AuthenticatedAt: time.Now(),
		}
		if ip := clientIP(r); ip != nil {
			id.WithRemoteIP(ip)
		}

		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}

// resolveProject maps a credential to a project id. A credential shaped like
// a JWT is verified as a project token (and its project re-checked against
// the store, so tokens for deleted projects die); anything else is treated
// as a raw API key and looked up by digest.
func (a *APIKeyAuthenticator) resolveProject(ctx context.Context, credential string) (string, error) {
	if a.Tokens != nil && strings.Count(credential, ".") == 2 {
		projectID, err := a.Tokens.Verify(credential)
		if err != nil {
			return "", errBadCredential
		}
		exists, err := a.Projects.ProjectExists(ctx, projectID)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", errBadCredential
		}
		return projectID, nil
	}

	return a.Projects.FindProjectByKeyDigest(ctx, apikey.Digest(credential))
}

var errBadCredential = errors.New("bad credential")

func isCredentialFailure(err error) bool {
	return errors.Is(err, errBadCredential) || errors.Is(err, store.ErrProjectNotFound)
}

// clientIP resolves the caller's IP. X-Forwarded-For is honored only when
// the direct peer is a configured trusted proxy.
func clientIP(r *http.Request) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return nil
	}
	if config.Get().IsTrustedProxy(host) {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first := strings.TrimSpace(strings.Split(fwd, ",")[0])
			if ip := net.ParseIP(first); ip != nil {
				return ip
			}
		}
	}
	return net.ParseIP(host)
}

func credentialFromHeader(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	if after, ok := strings.CutPrefix(header, "Bearer "); ok && after != "" {
		return after, true
	}
	if matches := tokenRegex.FindStringSubmatch(header); len(matches) == 2 && matches[1] != "" {
		return matches[1], true
	}
	return "", false
}

func unauthorized(w http.ResponseWriter, message string) {
	respondWith(w, http.StatusUnauthorized, message)
}

func respondWith(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
