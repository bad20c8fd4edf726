// Package store implements the remote collection used for every SITRACK
// entity: an in-memory list mirrored from one backend resource, plus the
// calls that keep the two in step.
//
// Every operation returns its own Result and never panics or returns a bare
// error. Failures keep the previous items, are recorded as the collection's
// last error and are reported to the Notifier.
//
// A Collection is safe for concurrent use. The lock is never held across a
// network call, so concurrent operations resolve in completion order.
package store
