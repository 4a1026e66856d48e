package commands_test

import (
	"errors"
	"testing"

	"routeplan/internal/core/application/usecases/commands"
	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/location"
	"routeplan/internal/core/domain/model/order"
	"routeplan/internal/core/domain/model/vehicle"
	"routeplan/internal/core/domain/services"
	"routeplan/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderHandler(
	t *testing.T,
	factory *MockOrderUoWFactory,
	pairStore *MockPairStore,
	provider *MockMatrixProvider,
) commands.CreateOrderCommandHandler {
	t.Helper()

	matrixService, err := services.NewMatrixService(pairStore, provider)
	require.NoError(t, err)

	h, err := commands.NewCreateOrderCommandHandler(factory, matrixService)
	require.NoError(t, err)
	return h
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	depot := fixtureLocation(t, "depot", 55.75, 37.61)
	depot.MarkDepot(true)
	stop := fixtureLocation(t, "stop", 55.76, 37.62)
	truck := fixtureVehicle(t, "A001", 100)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		[]kernel.UUID{depot.ID(), stop.ID()},
		[]kernel.UUID{truck.ID()},
	)
	require.NoError(t, err)

	records := []order.LocationRecord{order.SnapshotLocation(depot), order.SnapshotLocation(stop)}

	locationRepo := new(MockLocationRepository)
	vehicleRepo := new(MockVehicleRepository)
	orderRepo := new(MockOrderRepository)
	pairStore := new(MockPairStore)
	provider := new(MockMatrixProvider)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("GetByIDs", ctx, mock.Anything).
			Return([]*location.Location{depot, stop}, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("GetByIDs", ctx, mock.Anything).
			Return([]*vehicle.Vehicle{truck}, nil).Once(),
		pairStore.On("GetPairs", ctx, mock.Anything).
			Return(fixturePairs(records), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(t, factory, pairStore, provider)
	require.NoError(t, h.Handle(ctx, cmd))

	locationRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	pairStore.AssertExpectations(t)
	uow.AssertExpectations(t)
	provider.AssertNotCalled(t, "ComputeMatrix", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := newCreateOrderHandler(
		t, new(MockOrderUoWFactory), new(MockPairStore), new(MockMatrixProvider),
	)
	err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_MissingLocation(t *testing.T) {
	ctx := t.Context()

	missingID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		[]kernel.UUID{missingID, kernel.NewUUID()},
		[]kernel.UUID{kernel.NewUUID()},
	)
	require.NoError(t, err)

	locationRepo := new(MockLocationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("GetByIDs", ctx, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("location", missingID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(t, factory, new(MockPairStore), new(MockMatrixProvider))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoRouteFound_AbortsCreation(t *testing.T) {
	ctx := t.Context()

	depot := fixtureLocation(t, "depot", 55.75, 37.61)
	stop := fixtureLocation(t, "island", 55.76, 37.62)
	truck := fixtureVehicle(t, "A001", 100)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		[]kernel.UUID{depot.ID(), stop.ID()},
		[]kernel.UUID{truck.ID()},
	)
	require.NoError(t, err)

	elements := []distance.Element{
		{OriginIndex: 0, DestinationIndex: 1, Condition: distance.RouteNotFound},
		{OriginIndex: 1, DestinationIndex: 0, DistanceMeters: 900, DurationMinutes: 4, Condition: distance.RouteExists},
	}

	locationRepo := new(MockLocationRepository)
	vehicleRepo := new(MockVehicleRepository)
	orderRepo := new(MockOrderRepository)
	pairStore := new(MockPairStore)
	provider := new(MockMatrixProvider)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("GetByIDs", ctx, mock.Anything).
			Return([]*location.Location{depot, stop}, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("GetByIDs", ctx, mock.Anything).
			Return([]*vehicle.Vehicle{truck}, nil).Once(),
		pairStore.On("GetPairs", ctx, mock.Anything).Return([]distance.Pair{}, nil).Once(),
		provider.On("ComputeMatrix", ctx, mock.Anything).Return(elements, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(t, factory, pairStore, provider)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, distance.ErrNoRouteFound)

	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	depot := fixtureLocation(t, "depot", 55.75, 37.61)
	stop := fixtureLocation(t, "stop", 55.76, 37.62)
	truck := fixtureVehicle(t, "A001", 100)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		[]kernel.UUID{depot.ID(), stop.ID()},
		[]kernel.UUID{truck.ID()},
	)
	require.NoError(t, err)

	records := []order.LocationRecord{order.SnapshotLocation(depot), order.SnapshotLocation(stop)}

	locationRepo := new(MockLocationRepository)
	vehicleRepo := new(MockVehicleRepository)
	orderRepo := new(MockOrderRepository)
	pairStore := new(MockPairStore)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("GetByIDs", ctx, mock.Anything).
			Return([]*location.Location{depot, stop}, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("GetByIDs", ctx, mock.Anything).
			Return([]*vehicle.Vehicle{truck}, nil).Once(),
		pairStore.On("GetPairs", ctx, mock.Anything).
			Return(fixturePairs(records), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(t, factory, pairStore, new(MockMatrixProvider))
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
