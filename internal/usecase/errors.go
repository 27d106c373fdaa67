package usecase

import "fmt"

// ValidationError rejects the submission before any side effect. The handler
// maps it to a client error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// PersistenceError means the system-of-record insert failed. It is fatal to
// the request: the fan-out is never attempted, the handler maps it to a
// server error.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "failed to save lead: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }
