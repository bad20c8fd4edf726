// Package client contains the transport of the SITRACK admin client.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface): Login, Logout, Do for
//     JSON envelope calls and Download for binary exports.
//  2. A net/http implementation (see HTTPClient) that adds the bearer token
//     and a request id to every call, and maps HTTP status classes to
//     sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): an SQLite
//     database with embedded goose migrations.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError, which unwraps to one of
// common.ErrUnauthorized, common.ErrNotFound, common.ErrUnavailable or
// common.ErrServer. Transport failures wrap common.ErrUnavailable; a body that
// is not an envelope wraps common.ErrBadResponse.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every call honours ctx.
package client
