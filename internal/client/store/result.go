package store

// Result is the outcome of one store operation.
type Result[T any] struct {
	OK    bool
	Value T
	Err   error
	// Message is the user-facing text that was sent to the Notifier.
	Message string
	// Stale is set when the backend accepted a change for a record that is
	// not in the local list. The list is left as it was.
	Stale bool
}

func succeeded[T any](v T, msg string) Result[T] {
	return Result[T]{OK: true, Value: v, Message: msg}
}

func failed[T any](err error, msg string) Result[T] {
	return Result[T]{Err: err, Message: msg}
}
