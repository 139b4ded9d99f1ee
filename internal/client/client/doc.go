// Package client contains client-side building blocks for the notes app.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the notes backend: GetAll/Create/Update/Delete for notes, Login,
//     and Ping.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches the
//     session token as a bearer credential and maps HTTP status codes to
//     sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
