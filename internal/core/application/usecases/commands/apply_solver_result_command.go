package commands

import (
	"errors"

	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/errs"
	"routeplan/internal/pkg/guard"
)

var ErrApplySolverResultCommandIsNotConstructed = errors.New(
	"ApplySolverResultCommand must be created via NewApplySolverResultCommand constructor",
)

// DefaultFailReason is recorded when the solver reports a failure without a
// message.
const DefaultFailReason = "Unknown error"

// StopResult is one visited location in a solver route, in visit order.
// ArrivalTime is minutes from the start of the service day, Demand the load
// change applied at the stop.
type StopResult struct {
	LocationID  kernel.UUID
	ArrivalTime int
	Demand      int
}

// RouteResult is one vehicle's route as reported by the solver.
type RouteResult struct {
	VehicleID     kernel.UUID
	TotalDistance int
	Stops         []StopResult
}

// ApplySolverResultCommand carries a solver callback: the terminal outcome of
// a compute job plus, on success, the solved routes.
type ApplySolverResultCommand struct { //nolint:recvcheck //using for validation
	computeID  kernel.UUID
	status     compute.Status
	failReason string
	routes     []RouteResult

	guard guard.ConstructorGuard
}

// NewApplySolverResultCommand creates a command from a raw callback. status
// must be "completed", "failed", or the solver's "error" alias for failed; a
// failed outcome with an empty message is recorded with DefaultFailReason;
// routes are only accepted for completed outcomes.
func NewApplySolverResultCommand(
	computeID kernel.UUID, status string, message string, routes []RouteResult,
) (ApplySolverResultCommand, error) {
	cmd := ApplySolverResultCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setComputeID(computeID),
		cmd.setOutcome(status, message),
		cmd.setRoutes(routes),
	); err != nil {
		return ApplySolverResultCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplySolverResultCommand) Validate() error {
	return c.guard.Validate(ErrApplySolverResultCommandIsNotConstructed)
}

// ComputeID returns the identifier of the compute being reconciled.
func (c ApplySolverResultCommand) ComputeID() kernel.UUID {
	return c.computeID
}

// Status returns the terminal outcome.
func (c ApplySolverResultCommand) Status() compute.Status {
	return c.status
}

// FailReason returns the failure message, empty for completed outcomes.
func (c ApplySolverResultCommand) FailReason() string {
	return c.failReason
}

// Routes returns the solved routes, empty for failed outcomes.
func (c ApplySolverResultCommand) Routes() []RouteResult {
	routes := make([]RouteResult, len(c.routes))
	copy(routes, c.routes)
	return routes
}

func (c *ApplySolverResultCommand) setComputeID(computeID kernel.UUID) error {
	if err := computeID.Validate(); err != nil {
		return err
	}

	c.computeID = computeID
	return nil
}

func (c *ApplySolverResultCommand) setOutcome(status string, message string) error {
	// The solver reports failures as "error" on the wire.
	if status == "error" {
		status = compute.Failed.String()
	}

	parsed, err := compute.StatusFromString(status)
	if err != nil {
		return err
	}

	switch parsed {
	case compute.Completed:
		c.status = parsed
	case compute.Failed:
		c.status = parsed
		c.failReason = message
		if c.failReason == "" {
			c.failReason = DefaultFailReason
		}
	default:
		return errs.NewValueIsInvalidError("status")
	}

	return nil
}

func (c *ApplySolverResultCommand) setRoutes(routes []RouteResult) error {
	if c.status != compute.Completed {
		if len(routes) > 0 {
			return errs.NewValueIsInvalidError("routes")
		}
		return nil
	}

	for _, route := range routes {
		if err := route.VehicleID.Validate(); err != nil {
			return err
		}
		if route.TotalDistance < 0 {
			return errs.NewValueIsInvalidError("totalDistance")
		}
		if len(route.Stops) == 0 {
			return errs.NewValueIsRequiredError("stops")
		}
		for _, stop := range route.Stops {
			if err := stop.LocationID.Validate(); err != nil {
				return err
			}
			if stop.ArrivalTime < 0 {
				return errs.NewValueIsInvalidError("arrivalTime")
			}
		}
	}

	c.routes = make([]RouteResult, len(routes))
	copy(c.routes, routes)
	return nil
}
