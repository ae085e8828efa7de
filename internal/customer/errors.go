package customer

import "fmt"

// ValidationError reports caller input that violates a precondition.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

var (
	ErrMissingOrg = &ValidationError{Reason: "missing Org"}
	ErrNoFields   = &ValidationError{Reason: "no fields to update"}
)

// StoreError reports that the record store could not complete an operation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
