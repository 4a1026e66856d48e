package compute

import (
	"fmt"

	"routeplan/internal/pkg/errs"
)

// Status represents the lifecycle state of a compute job.
type Status int

const (
	// StatusUnknown is an invalid zero value.
	StatusUnknown Status = iota

	// Initial is a pre-dispatch marker. It is indistinguishable from Pending
	// in behavior and exists for parity with stored historical rows.
	Initial

	// Pending means the job row exists and the solver has either not been
	// called yet or has accepted the job for asynchronous processing.
	Pending

	// Computing is the conceptual state between dispatch acceptance and
	// callback arrival. It is never written by this service.
	Computing

	// Completed is terminal: the solver delivered results and routes were
	// persisted.
	Completed

	// Failed is terminal: the build, the dispatch, or the solver itself
	// failed, or the job exceeded its deadline.
	Failed

	// Cancelled is terminal: the operator cancelled the job before a result
	// arrived.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Initial:       "initial",
		Pending:       "pending",
		Computing:     "computing",
		Completed:     "completed",
		Failed:        "failed",
		Cancelled:     "cancelled",
	}
}

// StatusFromString parses a persisted or transport-level status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("compute status",
		fmt.Errorf("%q is not a valid compute status", s))
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects values outside the known set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("compute status",
			fmt.Errorf("%d is not a valid compute status", s))
	}
	return nil
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed || s == Cancelled
}

// Complete transitions to Completed. Valid only from a non-terminal state.
func (s Status) Complete() (Status, error) {
	if err := s.validateTransition("complete"); err != nil {
		return 0, err
	}
	return Completed, nil
}

// Fail transitions to Failed. Valid only from a non-terminal state.
func (s Status) Fail() (Status, error) {
	if err := s.validateTransition("fail"); err != nil {
		return 0, err
	}
	return Failed, nil
}

// Cancel transitions to Cancelled. Valid only from a non-terminal state.
func (s Status) Cancel() (Status, error) {
	if err := s.validateTransition("cancel"); err != nil {
		return 0, err
	}
	return Cancelled, nil
}

func (s Status) validateTransition(action string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return NewAlreadyTerminalError(s, action)
	}
	return nil
}
