package ports

import (
	"context"
	"errors"
	"fmt"
)

// ErrDispatchRejected indicates the solver answered a submission with a
// non-success status.
var ErrDispatchRejected = errors.New("solver rejected the job")

// ErrDispatchTransport indicates a submission never produced a solver
// response.
var ErrDispatchTransport = errors.New("solver dispatch transport failure")

// DispatchRejectedError carries the solver's rejection status and body.
type DispatchRejectedError struct {
	Code int
	Body string
}

// NewDispatchRejectedError creates a DispatchRejectedError.
func NewDispatchRejectedError(code int, body string) *DispatchRejectedError {
	return &DispatchRejectedError{Code: code, Body: body}
}

func (e *DispatchRejectedError) Error() string {
	return fmt.Sprintf("%s: code %d: %s", ErrDispatchRejected, e.Code, e.Body)
}

func (e *DispatchRejectedError) Unwrap() error {
	return ErrDispatchRejected
}

// DispatchTransportError wraps the network failure behind a submission.
type DispatchTransportError struct {
	Cause error
}

// NewDispatchTransportError creates a DispatchTransportError.
func NewDispatchTransportError(cause error) *DispatchTransportError {
	return &DispatchTransportError{Cause: cause}
}

func (e *DispatchTransportError) Error() string {
	return fmt.Sprintf("%s: %v", ErrDispatchTransport, e.Cause)
}

func (e *DispatchTransportError) Unwrap() error {
	return ErrDispatchTransport
}

// SolveLocation is one node of a solver request. Demands are expressed in
// abstract capacity units, service time and window bounds in minutes.
type SolveLocation struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	Pickup          int     `json:"pickup"`
	Delivery        int     `json:"delivery"`
	ServiceTime     int     `json:"service_time"`
	TimeWindowStart int     `json:"time_window_start"`
	TimeWindowEnd   int     `json:"time_window_end"`
}

// SolveVehicle is one vehicle of a solver request.
type SolveVehicle struct {
	ID        string `json:"id"`
	Capacity  int    `json:"capacity"`
	FixedCost int    `json:"fixed_cost"`
}

// SolveRequest is the complete payload handed to the external solver.
// Matrix rows follow the order of Locations; distances are meters, times
// are minutes. ComputeID is the job identifier the solver must echo back
// in its callback; WebhookURL is where that callback goes.
type SolveRequest struct {
	ComputeID        string          `json:"compute_id"`
	WebhookURL       string          `json:"webhook_url"`
	DepotIndex       int             `json:"depot_index"`
	Locations        []SolveLocation `json:"locations"`
	Vehicles         []SolveVehicle  `json:"vehicles"`
	DistanceMatrix   [][]int         `json:"distance_matrix"`
	TimeMatrix       [][]int         `json:"time_matrix"`
	TimeLimitSeconds int             `json:"time_limit_seconds"`
}

// SolverClient is the outbound contract of the asynchronous solver service.
type SolverClient interface {
	// Dispatch submits a request for asynchronous solving. A nil error means
	// the solver accepted the job; results arrive later on the webhook.
	Dispatch(ctx context.Context, request *SolveRequest) error
}
