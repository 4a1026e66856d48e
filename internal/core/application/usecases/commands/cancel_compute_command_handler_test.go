package commands_test

import (
	"testing"

	"routeplan/internal/core/application/usecases/commands"
	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelComputeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	computeID := kernel.NewUUID()
	cmd, err := commands.NewCancelComputeCommand(computeID)
	require.NoError(t, err)

	computeRepo := new(MockComputeRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComputeRepository").Return(computeRepo).Once(),
		computeRepo.On("Finish", ctx, computeID, compute.Cancelled, "", mock.AnythingOfType("int64")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelComputeCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestCancelComputeCommandHandler_Handle_AlreadyTerminal(t *testing.T) {
	ctx := t.Context()

	computeID := kernel.NewUUID()
	cmd, err := commands.NewCancelComputeCommand(computeID)
	require.NoError(t, err)

	computeRepo := new(MockComputeRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComputeRepository").Return(computeRepo).Once(),
		computeRepo.On("Finish", ctx, computeID, compute.Cancelled, "", mock.AnythingOfType("int64")).
			Return(compute.NewAlreadyTerminalError(compute.Completed, "cancel")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelComputeCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, compute.ErrAlreadyTerminal)
	uow.AssertExpectations(t)
}
