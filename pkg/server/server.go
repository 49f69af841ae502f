package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/access"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/grantkey"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/middleware"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/store"
	gormstore "github.com/doodlesbykumbi/access-api-in-go/pkg/server/store/gorm"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/token"
)

// Server owns the router, the HTTP server and the wired stores. Endpoints
// are registered on it by the endpoints subpackage.
type Server struct {
	Router *mux.Router
	DB     *gorm.DB

	Evaluator      *access.Evaluator
	ProjectsStore  store.ProjectsStore
	HealthStore    store.HealthStore
	TokenIssuer    *token.Issuer
	AuthMiddleware *middleware.APIKeyAuthenticator

	srv *http.Server
}

// NewServer wires the gorm stores, grant key resolver, evaluator and auth
// middleware over db and prepares an HTTP server on host:port. issuer may be
// nil to disable project tokens.
func NewServer(db *gorm.DB, issuer *token.Issuer, host string, port string) *Server {
	permissions := gormstore.NewPermissionsStore(db)
	grants := gormstore.NewGrantsStore(db)
	projects := gormstore.NewProjectsStore(db)
	health := gormstore.NewHealthStore(db)
	keys := grantkey.NewResolver(gormstore.NewSchemaStore(db))

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:         router,
		DB:             db,
		Evaluator:      access.NewEvaluator(permissions, grants, keys),
		ProjectsStore:  projects,
		HealthStore:    health,
		TokenIssuer:    issuer,
		AuthMiddleware: middleware.NewAPIKeyAuthenticator(projects, issuer),
		srv:            srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
