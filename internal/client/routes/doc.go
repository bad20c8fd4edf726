// Package routes holds the static route table of the SITRACK client and the
// predicate that decides whether the current session may open a route.
//
// Authorize is pure: it sees only the route descriptor, the token and the
// role, and never touches the session itself.
package routes
