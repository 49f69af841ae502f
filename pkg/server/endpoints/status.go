package endpoints

import (
	"log"
	"net/http"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/server"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/store"
)

// RegisterStatusEndpoints registers the health endpoint. It takes no auth:
// load balancers and accessctl wait probe it before any key exists.
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/health", handleHealth(s.HealthStore)).Methods("GET")
}

func handleHealth(health store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := health.CheckConnectivity(r.Context()); err != nil {
			log.Printf("health check failed: %v", err)
			respondWithJSON(w, http.StatusServiceUnavailable, map[string]bool{"ok": false})
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
