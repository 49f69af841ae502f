// Package model defines the database models for the access API.
//
// This package contains GORM models that map to the access database schema.
// Every row is scoped to exactly one project; queries must always carry a
// project_id predicate.
//
// # Core Models
//
//   - Project: tenant boundary, referenced by everything else
//   - APIKey: hashed project credentials used by the auth middleware
//   - Permission: a named capability within a project, with usage counters
//   - AccessGrant: a (project, user, permission) grant, optionally expiring
//
// # Database Schema
//
// The database uses PostgreSQL with the following tables:
//
//   - projects: tenant records
//   - api_keys: SHA-256 digests of project API keys
//   - permissions: permission catalog per project
//   - access_grants: grants keyed by (project_id, user_id, grant key)
package model
