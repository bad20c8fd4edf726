package common

// AuthorizationHeaderName carries the bearer token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is prepended to the session token in AuthorizationHeaderName.
const BearerPrefix = "Bearer "

// RequestIDHeaderName correlates a client request with backend logs.
const RequestIDHeaderName = "X-Request-ID"

// Durable storage keys for the session.
const (
	StorageKeyToken    = "token"
	StorageKeyUsername = "username"
	StorageKeyRole     = "role"
)

// DefaultUsername is shown when the token does not name the user.
const DefaultUsername = "Pengguna"
