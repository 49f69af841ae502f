// Package grantkey resolves which access_grants column identifies the
// permission a grant refers to.
//
// Deployments differ: newer schemas reference the permission catalog by
// internal id (permission_id), older ones carry the slug (permission_slug)
// or a free-form resource string (resource). The Resolver inspects the live
// schema once per process and the rest of the engine dispatches through the
// resulting Mode, so the same binary serves all three shapes.
package grantkey
