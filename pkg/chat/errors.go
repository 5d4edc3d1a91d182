package chat

import "errors"

// Validation failures. All are detected synchronously before any state
// mutation and surfaced verbatim to the caller; none is retried.
var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrDuplicateName = errors.New("name is already signed in")
	ErrUnknownUser   = errors.New("user is not signed in")
	ErrEmptyMessage  = errors.New("message cannot be empty")
)
