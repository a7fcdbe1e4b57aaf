package services

import "fmt"

// LocalPersistenceError means the per-user booking cache could not be read
// or written. When it happens during a booking, the shared posting has not
// been touched.
type LocalPersistenceError struct {
	Op  string
	Err error
}

func (e *LocalPersistenceError) Error() string {
	return fmt.Sprintf("booking cache %s failed: %v", e.Op, e.Err)
}

func (e *LocalPersistenceError) Unwrap() error {
	return e.Err
}

// RemoteDeleteError means the shared-store delete failed for a reason other
// than the posting already being absent. The local booking written before
// the delete is kept, so the caller can warn the user about the ride
// possibly being taken already.
type RemoteDeleteError struct {
	Err error
}

func (e *RemoteDeleteError) Error() string {
	return fmt.Sprintf("shared store delete failed: %v", e.Err)
}

func (e *RemoteDeleteError) Unwrap() error {
	return e.Err
}
