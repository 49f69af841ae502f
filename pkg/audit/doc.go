// Package audit provides audit logging for the access engine.
//
// Events are written to STDOUT in RFC5424 syslog format and, when
// AUDIT_DATABASE_URL is set, persisted to a messages table in a separate
// audit database.
//
// # Events
//
//   - check: a permission check and its verdict
//   - grant, revoke: grant mutations
//   - authn: project authentication outcomes
//
// # Environment Variables
//
//   - ACCESS_AUDIT_ENABLED: Set to "false" to disable audit logging
//   - AUDIT_DATABASE_URL: Optional PostgreSQL connection for persistence
package audit
