package endpoints

import (
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterAuthenticateEndpoint(srv)
	RegisterAccessEndpoints(srv)
}
