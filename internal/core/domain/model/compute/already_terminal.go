package compute

import (
	"errors"
	"fmt"
)

// ErrAlreadyTerminal is the sentinel for attempts to transition a compute
// that already reached a terminal status. Callback handling maps it to a
// conflict response so a late solver delivery never resurrects a cancelled
// or failed job.
var ErrAlreadyTerminal = errors.New("compute is already in a terminal status")

// AlreadyTerminalError carries the status that blocked the transition.
type AlreadyTerminalError struct {
	Status Status
	Action string
}

// NewAlreadyTerminalError creates an AlreadyTerminalError for the given
// current status and attempted action.
func NewAlreadyTerminalError(status Status, action string) *AlreadyTerminalError {
	return &AlreadyTerminalError{Status: status, Action: action}
}

func (e *AlreadyTerminalError) Error() string {
	return fmt.Sprintf("%s: cannot %s a %s compute", ErrAlreadyTerminal, e.Action, e.Status)
}

func (e *AlreadyTerminalError) Unwrap() error {
	return ErrAlreadyTerminal
}
