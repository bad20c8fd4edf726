package store

// Notifier shows short-lived messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type discard struct{}

func (discard) Success(string) {}
func (discard) Error(string)   {}

// Discard drops every message.
var Discard Notifier = discard{}
