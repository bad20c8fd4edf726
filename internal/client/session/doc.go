// Package session owns the bearer token of the SITRACK client and the
// identity decoded from it.
//
// A Session is the single writer of the token: only Login, Logout and Init
// change it. Everything else (collection stores, the route guard, the CLI)
// receives the read-only View.
//
// The token is persisted through a Storage; absence of the stored token is
// the canonical logged-out state. Claims are decoded from the token payload
// without verifying the signature: the backend is the authority, the client
// only needs the username and role for display and route guarding.
package session
