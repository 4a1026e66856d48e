package commands

import (
	"context"
	"errors"
	"time"

	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/pkg/errs"
)

// ExpireComputesCommandHandler fails pending computes whose solver never
// called back within the configured grace period.
//
// Each overdue compute is finished in its own transaction through the usual
// conditional transition, so a callback landing mid-sweep wins over the
// sweeper and is not clobbered.
type ExpireComputesCommandHandler struct {
	uowFactory ComputeUoWFactory
	maxAge     time.Duration
}

// NewExpireComputesCommandHandler creates a handler for expiry sweeps.
// maxAge is how long a pending compute may wait for its callback.
func NewExpireComputesCommandHandler(
	uowFactory ComputeUoWFactory, maxAge time.Duration,
) (ExpireComputesCommandHandler, error) {
	if uowFactory == nil {
		return ExpireComputesCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if maxAge <= 0 {
		return ExpireComputesCommandHandler{}, errs.NewValueIsInvalidError("maxAge")
	}

	return ExpireComputesCommandHandler{uowFactory: uowFactory, maxAge: maxAge}, nil
}

// Handle fails every pending compute older than the grace period.
func (h *ExpireComputesCommandHandler) Handle(ctx context.Context, cmd ExpireComputesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()
	cutoff := now.Add(-h.maxAge).Unix()

	overdue, err := h.findOverdue(ctx, cutoff)
	if err != nil {
		return err
	}

	var sweepErrs []error
	for _, job := range overdue {
		if err = h.expireOne(ctx, job, now.Unix()); err != nil {
			// Losing to a concurrent callback is the desired outcome,
			// not a sweep failure.
			if errors.Is(err, compute.ErrAlreadyTerminal) {
				continue
			}
			sweepErrs = append(sweepErrs, err)
		}
	}

	return errors.Join(sweepErrs...)
}

func (h *ExpireComputesCommandHandler) findOverdue(ctx context.Context, cutoff int64) ([]*compute.Compute, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	overdue, err := uow.ComputeRepository().GetAllPendingBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return overdue, nil
}

func (h *ExpireComputesCommandHandler) expireOne(ctx context.Context, job *compute.Compute, now int64) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ComputeRepository().Finish(ctx, job.ID(), compute.Failed, ExpireReason, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
