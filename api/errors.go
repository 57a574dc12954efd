package api

import (
	"errors"
	"fmt"
)

var ErrInvalidState = errors.New("invalid server state")

// BindError reports that the listener could not be opened on Address.
type BindError struct {
	Address string
	Err     error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Address, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// StateError reports an operation attempted in the wrong lifecycle state.
type StateError struct {
	Operation string
	State     State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: server is %s", e.Operation, e.State)
}

func (e *StateError) Unwrap() error {
	return ErrInvalidState
}
