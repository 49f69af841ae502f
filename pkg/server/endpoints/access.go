package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/access"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/audit"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/identity"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server"
)

// AccessRequest is the body of the /access endpoints. ExpiresAt is only
// honored by /access/grant.
type AccessRequest struct {
	UserID     string `json:"user_id"`
	Permission string `json:"permission"`
	ExpiresAt  string `json:"expires_at,omitempty"`
}

// RegisterAccessEndpoints registers the check/grant/revoke endpoints behind
// the API key middleware.
func RegisterAccessEndpoints(s *server.Server) {
	sub := s.Router.PathPrefix("/access").Subrouter()
	sub.Use(s.AuthMiddleware.Middleware)

	sub.HandleFunc("/check", handleAccessCheck(s.Evaluator)).Methods("POST")
	sub.HandleFunc("/grant", handleAccessGrant(s.Evaluator)).Methods("POST")
	sub.HandleFunc("/revoke", handleAccessRevoke(s.Evaluator)).Methods("POST")
}

func handleAccessCheck(evaluator *access.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := requireProject(w, r)
		if !ok {
			return
		}

		req, err := decodeAccessRequest(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		allowed, err := evaluator.Check(r.Context(), projectID, req.UserID, req.Permission)
		if err != nil {
			respondEvaluatorError(w, err)
			return
		}

		audit.Log(audit.CheckEvent{
			ProjectID:  projectID,
			UserID:     req.UserID,
			Permission: req.Permission,
			ClientIP:   clientIPString(r),
			Allowed:    allowed,
		})

		respondWithJSON(w, http.StatusOK, map[string]bool{"access": allowed})
	}
}

func handleAccessGrant(evaluator *access.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := requireProject(w, r)
		if !ok {
			return
		}

		req, err := decodeAccessRequest(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		var expiresAt *time.Time
		if req.ExpiresAt != "" {
			parsed, err := time.Parse(time.RFC3339, req.ExpiresAt)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid expires_at: %s", req.ExpiresAt))
				return
			}
			expiresAt = &parsed
		}

		if err := evaluator.Grant(r.Context(), projectID, req.UserID, req.Permission, expiresAt); err != nil {
			respondEvaluatorError(w, err)
			return
		}

		audit.Log(audit.GrantEvent{
			ProjectID:  projectID,
			UserID:     req.UserID,
			Permission: req.Permission,
			ClientIP:   clientIPString(r),
			ExpiresAt:  req.ExpiresAt,
		})

		respondWithJSON(w, http.StatusOK, map[string]bool{"granted": true})
	}
}

func handleAccessRevoke(evaluator *access.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := requireProject(w, r)
		if !ok {
			return
		}

		req, err := decodeAccessRequest(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := evaluator.Revoke(r.Context(), projectID, req.UserID, req.Permission); err != nil {
			respondEvaluatorError(w, err)
			return
		}

		audit.Log(audit.RevokeEvent{
			ProjectID:  projectID,
			UserID:     req.UserID,
			Permission: req.Permission,
			ClientIP:   clientIPString(r),
		})

		respondWithJSON(w, http.StatusOK, map[string]bool{"revoked": true})
	}
}

// requireProject reads the project identity the middleware attached. A
// missing identity is an internal defect (the middleware did not run), never
// an authorization verdict.
func requireProject(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := identity.Get(r.Context())
	if !ok || id.ProjectID == "" {
		respondWithError(w, http.StatusInternalServerError, "no project identity on request")
		return "", false
	}
	return id.ProjectID, true
}

// clientIPString reads the client IP the auth middleware resolved, falling
// back to the raw peer address.
func clientIPString(r *http.Request) string {
	if id, ok := identity.Get(r.Context()); ok && id.RemoteIP != nil {
		return id.RemoteIP.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func decodeAccessRequest(r *http.Request) (*AccessRequest, error) {
	var req AccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid request body")
	}
	if req.UserID == "" {
		return nil, errors.New("user_id is required")
	}
	if req.Permission == "" {
		return nil, errors.New("permission is required")
	}
	return &req, nil
}

// respondEvaluatorError maps evaluator failures to the wire: client-caused
// ones carry their message on a 400, everything else is a generic 500 with
// the detail kept to the server log.
func respondEvaluatorError(w http.ResponseWriter, err error) {
	var badRequest *access.BadRequestError
	if errors.As(err, &badRequest) {
		respondWithError(w, http.StatusBadRequest, badRequest.Message)
		return
	}

	log.Printf("access endpoint error: %v", err)
	respondWithError(w, http.StatusInternalServerError, "internal error")
}
