// Package devserver is an in-memory stand-in for the SITRACK REST backend.
//
// It serves the endpoint families the admin client talks to, wrapped in the
// backend's JSON envelope {status, message, timestamp, data}, behind HS256
// bearer tokens carrying username and role claims. Records live in memory
// and receive server-assigned identifiers. It exists for local runs and for
// end-to-end tests of the client; it is not a production backend.
package devserver
