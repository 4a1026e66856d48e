package commands

import (
	"context"
	"fmt"
	"time"

	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/services"
	"routeplan/internal/core/ports"
	"routeplan/internal/pkg/errs"
)

// CreateComputeCommandHandler dispatches compute jobs to the external solver.
//
// The pending compute row is committed before any network work, so the job
// is durably recorded no matter what happens next: a crash between commit
// and dispatch leaves a pending row that the expiry sweeper eventually
// fails, and a build or dispatch failure finishes the compute as failed in
// a follow-up transaction. Either way the caller gets the compute id back,
// not an error; the failure is readable on the job itself.
type CreateComputeCommandHandler struct {
	uowFactory    ComputeUoWFactory
	matrixService *services.MatrixService
	builder       services.RequestBuilder
	solver        ports.SolverClient
	webhookURL    string
}

// NewCreateComputeCommandHandler creates a handler for compute dispatch.
// webhookURL is the public callback endpoint handed to the solver.
func NewCreateComputeCommandHandler(
	uowFactory ComputeUoWFactory,
	matrixService *services.MatrixService,
	builder services.RequestBuilder,
	solver ports.SolverClient,
	webhookURL string,
) (CreateComputeCommandHandler, error) {
	if uowFactory == nil {
		return CreateComputeCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if matrixService == nil {
		return CreateComputeCommandHandler{}, errs.NewValueIsRequiredError("matrixService")
	}
	if solver == nil {
		return CreateComputeCommandHandler{}, errs.NewValueIsRequiredError("solver")
	}
	if webhookURL == "" {
		return CreateComputeCommandHandler{}, errs.NewValueIsRequiredError("webhookURL")
	}

	return CreateComputeCommandHandler{
		uowFactory:    uowFactory,
		matrixService: matrixService,
		builder:       builder,
		solver:        solver,
		webhookURL:    webhookURL,
	}, nil
}

// Handle persists the pending compute first, then builds the solver request
// and hands it off. Build and dispatch failures fail the compute instead of
// surfacing to the caller.
func (h *CreateComputeCommandHandler) Handle(ctx context.Context, cmd CreateComputeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.insertPending(ctx, cmd); err != nil {
		return err
	}

	request, err := h.buildRequest(ctx, cmd)
	if err != nil {
		return h.failCompute(ctx, cmd.ComputeID(), fmt.Errorf("build compute %s: %w", cmd.ComputeID(), err))
	}

	if err = h.solver.Dispatch(ctx, request); err != nil {
		return h.failCompute(ctx, cmd.ComputeID(), fmt.Errorf("dispatch compute %s: %w", cmd.ComputeID(), err))
	}

	return nil
}

// insertPending commits the pending compute row with its start timestamp.
func (h *CreateComputeCommandHandler) insertPending(ctx context.Context, cmd CreateComputeCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	job, err := compute.NewCompute(cmd.ComputeID(), cmd.OrderID(), cmd.Policy(), time.Now().Unix())
	if err != nil {
		return err
	}

	if err = uow.ComputeRepository().Add(ctx, job); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildRequest loads the order snapshot, ensures the travel matrix, and
// assembles the solver request.
func (h *CreateComputeCommandHandler) buildRequest(
	ctx context.Context, cmd CreateComputeCommand,
) (*ports.SolveRequest, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if aggregate.Status() != kernel.EntityActive {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	matrix, err := h.matrixService.EnsureMatrix(ctx, aggregate.Locations())
	if err != nil {
		return nil, err
	}

	return h.builder.Build(cmd.ComputeID(), aggregate, matrix, cmd.Policy(), h.webhookURL)
}

// failCompute finishes the compute as failed with the cause as reason. The
// cause itself is swallowed; only a failure to record it is returned.
func (h *CreateComputeCommandHandler) failCompute(ctx context.Context, computeID kernel.UUID, cause error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("%w (mark failed: %w)", cause, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err := uow.ComputeRepository().Finish(ctx, computeID, compute.Failed, cause.Error(), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("%w (mark failed: %w)", cause, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("%w (mark failed: %w)", cause, err)
	}

	return nil
}
