// Package cli provides the interactive SITRACK admin command-line client.
//
// It wires configuration, the local session database, the backend client
// and one store per entity behind a REPL. Navigation and every entity
// command pass through the route guard, so a user only reaches the pages
// their role allows.
//
// Key features:
//   - Login / Logout / Whoami, with the session restored on start
//   - open <path> navigation with login, home and unauthorized redirects
//   - list / show / add / update / delete for every entity family
//   - approve and done transitions for orders, SPJ and asset requests
//   - report generation and export to a directory or S3
//   - the notification inbox
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
