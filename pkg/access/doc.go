// Package access implements the access grant engine: permission resolution,
// grant key translation, expiry-aware check, and idempotent grant/revoke
// mutation, all strictly scoped to one project per call.
//
// The Evaluator orchestrates the store interfaces in pkg/server/store and
// the schema-adaptive key resolution in pkg/grantkey. It performs no
// persistence of its own.
package access
