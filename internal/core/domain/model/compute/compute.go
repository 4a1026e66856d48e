package compute

import (
	"errors"

	"routeplan/internal/core/domain/model/kernel"
)

// ErrComputeIsNotConstructed is returned when a Compute instance was not
// created through NewCompute or RestoreCompute.
var ErrComputeIsNotConstructed = errors.New("Compute must be created via NewCompute constructor")

// DefaultTimeLimitSeconds is the solve time budget used when the policy does
// not set one.
const DefaultTimeLimitSeconds = 30

// Policy carries operator-supplied solve parameters.
type Policy struct {
	TimeLimitSeconds int
}

// TimeLimitOrDefault returns the configured time budget, falling back to
// DefaultTimeLimitSeconds when unset.
func (p Policy) TimeLimitOrDefault() int {
	if p.TimeLimitSeconds <= 0 {
		return DefaultTimeLimitSeconds
	}
	return p.TimeLimitSeconds
}

// Compute is one solver run for an order. The row is inserted in Pending
// before any network call and mutated only by the dispatcher (synchronous
// failure), the reconciler (callback), or the expiry sweeper. Once terminal,
// it never transitions again.
type Compute struct {
	id         kernel.UUID
	orderID    kernel.UUID
	status     Status
	startTime  int64
	endTime    int64
	failReason string
	policy     Policy

	isConstructed bool
}

// NewCompute creates a Pending compute with the given start time.
func NewCompute(id kernel.UUID, orderID kernel.UUID, policy Policy, startTime int64) (*Compute, error) {
	c := &Compute{
		status:        Pending,
		startTime:     startTime,
		policy:        policy,
		isConstructed: true,
	}

	if err := errors.Join(c.setID(id), c.setOrderID(orderID)); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCompute reconstructs a Compute from persistence.
func RestoreCompute(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	startTime int64,
	endTime int64,
	failReason string,
	policy Policy,
) (*Compute, error) {
	c, err := NewCompute(id, orderID, policy, startTime)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	c.status = status
	c.endTime = endTime
	c.failReason = failReason
	return c, nil
}

// Validate ensures the Compute was created through a constructor.
func (c *Compute) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrComputeIsNotConstructed
	}
	return nil
}

// ID returns the compute's identifier.
func (c *Compute) ID() kernel.UUID {
	return c.id
}

// OrderID returns the owning order's identifier.
func (c *Compute) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the current lifecycle status.
func (c *Compute) Status() Status {
	return c.status
}

// StartTime returns the creation time as epoch seconds.
func (c *Compute) StartTime() int64 {
	return c.startTime
}

// EndTime returns the terminal-transition time as epoch seconds, 0 while the
// job is still live.
func (c *Compute) EndTime() int64 {
	return c.endTime
}

// FailReason returns the failure description, empty unless Failed.
func (c *Compute) FailReason() string {
	return c.failReason
}

// Policy returns the solve policy.
func (c *Compute) Policy() Policy {
	return c.policy
}

// Complete marks the job completed at the given time.
func (c *Compute) Complete(now int64) error {
	newStatus, err := c.status.Complete()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.endTime = now
	return nil
}

// Fail marks the job failed at the given time, recording the reason.
func (c *Compute) Fail(reason string, now int64) error {
	newStatus, err := c.status.Fail()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.failReason = reason
	c.endTime = now
	return nil
}

// Cancel marks the job cancelled at the given time. Cancellation is
// cooperative: it does not stop solver-side computation, and a later callback
// for this job will be rejected as a conflict.
func (c *Compute) Cancel(now int64) error {
	newStatus, err := c.status.Cancel()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.endTime = now
	return nil
}

func (c *Compute) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Compute) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
