package endpoints

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/apikey"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/audit"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/token"
)

// TokenRequest is the body of POST /authn/token.
type TokenRequest struct {
	APIKey string `json:"api_key"`
}

// TokenResponse carries an issued project token.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// RegisterAuthenticateEndpoint registers POST /authn/token, which exchanges
// a project API key for a short-lived project token. Unregistered when the
// server runs without a token secret.
func RegisterAuthenticateEndpoint(s *server.Server) {
	if s.TokenIssuer == nil {
		return
	}
	s.Router.HandleFunc("/authn/token", handleIssueToken(s.ProjectsStore, s.TokenIssuer)).Methods("POST")
}

func handleIssueToken(projects store.ProjectsStore, issuer *token.Issuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.APIKey == "" {
			respondWithError(w, http.StatusBadRequest, "api_key is required")
			return
		}

		projectID, err := projects.FindProjectByKeyDigest(r.Context(), apikey.Digest(req.APIKey))
		if err != nil {
			if errors.Is(err, store.ErrProjectNotFound) {
				audit.Log(audit.AuthenticateEvent{
					ClientIP:     clientIPString(r),
					Success:      false,
					ErrorMessage: "invalid API key",
				})
				respondWithError(w, http.StatusUnauthorized, "invalid API key")
				return
			}
			log.Printf("token endpoint error: %v", err)
			respondWithError(w, http.StatusInternalServerError, "internal error")
			return
		}

		signed, err := issuer.Issue(projectID, time.Now())
		if err != nil {
			log.Printf("token endpoint error: %v", err)
			respondWithError(w, http.StatusInternalServerError, "internal error")
			return
		}

		audit.Log(audit.AuthenticateEvent{
			ProjectID: projectID,
			ClientIP:  clientIPString(r),
			Success:   true,
		})

		respondWithJSON(w, http.StatusOK, TokenResponse{
			Token:     signed,
			ExpiresIn: int64(issuer.TTL().Seconds()),
		})
	}
}
