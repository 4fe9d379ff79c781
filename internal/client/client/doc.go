// Package client contains the client-side building blocks that talk to the
// medicine-reminder backend and open the local database.
//
// # Overview
//
//  1. Client is the transport-agnostic API contract: Register, Login and the
//     reminder operations List, Create, Update, Delete.
//  2. HTTPClient implements it over the backend's JSON REST API. Reminder
//     calls read the bearer token from a CredentialSource and fail fast with
//     ErrNotAuthenticated when there is none, without touching the network.
//  3. InitDatabase and RunMigrations open the local SQLite file and apply the
//     embedded goose migrations.
//
// # Error Handling
//
// Failures are reported as ErrNotAuthenticated, ErrUnavailable (transport),
// or *RejectedError (any other status, with the backend's "msg" as Reason).
// A RejectedError for 401/403 also matches ErrUnauthorized with errors.Is.
package client
