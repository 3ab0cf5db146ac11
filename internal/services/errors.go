package services

import "fmt"

// ValidationError reports invalid caller input: an unknown duration key on a
// strict path, a negative price, an unavailable package.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError reports an operation against a record whose state forbids it,
// such as cancelling an already-terminal subscription.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// DependencyError reports a failed call to an external collaborator
// (record store, expiry service). The operation was not retried.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
