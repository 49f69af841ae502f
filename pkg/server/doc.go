// Package server provides the HTTP server for the access API.
//
// This package implements the core HTTP server that handles all access API
// requests. It uses gorilla/mux for routing and wires the auth middleware,
// the gorm stores and the access evaluator together.
//
// # Server Setup
//
//	srv := server.NewServer(db, issuer, "0.0.0.0", "3001")
//	endpoints.RegisterAll(srv)
//	log.Fatal(srv.Start())
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - POST /access/check - expiry-aware access evaluation
//   - POST /access/grant - idempotent grant upsert
//   - POST /access/revoke - idempotent grant delete
//   - POST /authn/token - exchange a project API key for a short-lived token
//   - GET /health - unauthenticated liveness and DB connectivity
//
// The /access endpoints sit behind the API key middleware, which attaches a
// typed project identity to the request context before handlers run.
package server
