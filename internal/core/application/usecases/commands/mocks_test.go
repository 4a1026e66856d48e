package commands_test

import (
	"context"
	"errors"

	"routeplan/internal/core/application/usecases/commands"
	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/location"
	"routeplan/internal/core/domain/model/order"
	"routeplan/internal/core/domain/model/vehicle"
	"routeplan/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var errNotImplemented = errors.New("not implemented in mock")

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLocationRepository) Update(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}
func (m *MockLocationRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*location.Location, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*location.Location), args.Error(1)
}
func (m *MockLocationRepository) GetAllActive(_ context.Context) ([]*location.Location, error) {
	return nil, errNotImplemented
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}
func (m *MockVehicleRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}
func (m *MockVehicleRepository) GetAllActive(_ context.Context) ([]*vehicle.Vehicle, error) {
	return nil, errNotImplemented
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockComputeRepository struct{ mock.Mock }

func (m *MockComputeRepository) Add(ctx context.Context, c *compute.Compute) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockComputeRepository) Get(ctx context.Context, id kernel.UUID) (*compute.Compute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compute.Compute), args.Error(1)
}
func (m *MockComputeRepository) Finish(
	ctx context.Context, id kernel.UUID, status compute.Status, failReason string, endTime int64,
) error {
	args := m.Called(ctx, id, status, failReason, endTime)
	return args.Error(0)
}
func (m *MockComputeRepository) GetAllPendingBefore(ctx context.Context, cutoff int64) ([]*compute.Compute, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*compute.Compute), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, route compute.Route, stops []compute.RouteStop) error {
	args := m.Called(ctx, route, stops)
	return args.Error(0)
}
func (m *MockRouteRepository) GetByComputeID(_ context.Context, _ kernel.UUID) ([]compute.Route, error) {
	return nil, errNotImplemented
}
func (m *MockRouteRepository) GetStops(_ context.Context, _ kernel.UUID) ([]compute.RouteStop, error) {
	return nil, errNotImplemented
}

// MockUoW satisfies every command unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}
func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) ComputeRepository() ports.ComputeRepository {
	args := m.Called()
	return args.Get(0).(ports.ComputeRepository)
}
func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockLocationUoWFactory struct{ mock.Mock }

func (m *MockLocationUoWFactory) Create() commands.LocationUoW {
	args := m.Called()
	return args.Get(0).(commands.LocationUoW)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockComputeUoWFactory struct{ mock.Mock }

func (m *MockComputeUoWFactory) Create() commands.ComputeUoW {
	args := m.Called()
	return args.Get(0).(commands.ComputeUoW)
}

type MockReconcileUoWFactory struct{ mock.Mock }

func (m *MockReconcileUoWFactory) Create() commands.ReconcileUoW {
	args := m.Called()
	return args.Get(0).(commands.ReconcileUoW)
}

type MockPairStore struct{ mock.Mock }

func (m *MockPairStore) GetPairs(ctx context.Context, ids []kernel.UUID) ([]distance.Pair, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]distance.Pair), args.Error(1)
}
func (m *MockPairStore) AddPairs(ctx context.Context, pairs []distance.Pair) error {
	args := m.Called(ctx, pairs)
	return args.Error(0)
}

type MockMatrixProvider struct{ mock.Mock }

func (m *MockMatrixProvider) ComputeMatrix(ctx context.Context, points []kernel.GeoPoint) ([]distance.Element, error) {
	args := m.Called(ctx, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]distance.Element), args.Error(1)
}

type MockSolverClient struct{ mock.Mock }

func (m *MockSolverClient) Dispatch(ctx context.Context, request *ports.SolveRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}
