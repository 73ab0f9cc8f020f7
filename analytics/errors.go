package analytics

import "fmt"

// NotFoundError reports an unknown course or user id. Surfaced to the
// caller as-is, never retried.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// InvalidInputError reports a malformed profile or enum value rejected
// before any computation runs.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DataUnavailableError wraps a repository failure. The engine does not
// retry; the caller decides retry policy.
type DataUnavailableError struct {
	Op  string
	Err error
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("data unavailable during %s: %v", e.Op, e.Err)
}

func (e *DataUnavailableError) Unwrap() error { return e.Err }
