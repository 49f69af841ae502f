// Package main provides accessctl, the CLI for the access grant engine.
//
// The engine is a multi-tenant permission service: each project holds a
// permission catalog and per-user grants, checked and mutated over HTTP.
//
// # Quick Start
//
//	# Run database migrations
//	accessctl db migrate
//
//	# Create a project (prints its API key once)
//	accessctl project create t1
//
//	# Create a permission in the project
//	accessctl permission create t1 course_ultra
//
//	# Start the server
//	accessctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - ACCESS_TOKEN_SECRET: HMAC secret for project tokens (optional)
//   - ACCESS_LOG_LEVEL: Log level (debug enables SQL logging)
//   - PORT, BIND_ADDRESS: Server listen address
package main
