package http_test

import (
	"context"

	"routeplan/internal/core/application/usecases/commands"
	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/location"
	"routeplan/internal/core/domain/model/order"
	"routeplan/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Add(ctx context.Context, aggregate *location.Location) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLocationRepository) Update(ctx context.Context, aggregate *location.Location) error {
	args := m.Called(ctx, aggregate)
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

func (m *MockLocationRepository) GetAllActive(ctx context.Context) ([]*location.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*location.Location), args.Error(1)
}

type MockComputeRepository struct {
	mock.Mock
}

func (m *MockComputeRepository) Add(ctx context.Context, aggregate *compute.Compute) error {
	args := m.Called(ctx, aggregate)
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

func (m *MockComputeRepository) GetAllPendingBefore(
	ctx context.Context, cutoff int64,
) ([]*compute.Compute, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*compute.Compute), args.Error(1)
}

type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) Add(ctx context.Context, route compute.Route, stops []compute.RouteStop) error {
	args := m.Called(ctx, route, stops)
	return args.Error(0)
}

func (m *MockRouteRepository) GetByComputeID(
	ctx context.Context, computeID kernel.UUID,
) ([]compute.Route, error) {
	args := m.Called(ctx, computeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]compute.Route), args.Error(1)
}

func (m *MockRouteRepository) GetStops(ctx context.Context, routeID kernel.UUID) ([]compute.RouteStop, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]compute.RouteStop), args.Error(1)
}

// MockUoW satisfies every unit of work interface the command handlers use.
type MockUoW struct {
	mock.Mock

	locationRepo *MockLocationRepository
	orderRepo    *MockOrderRepository
	computeRepo  *MockComputeRepository
	routeRepo    *MockRouteRepository
}

func NewMockUoW() *MockUoW {
	return &MockUoW{
		locationRepo: new(MockLocationRepository),
		orderRepo:    new(MockOrderRepository),
		computeRepo:  new(MockComputeRepository),
		routeRepo:    new(MockRouteRepository),
	}
}

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
	return m.locationRepo
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orderRepo
}

func (m *MockUoW) ComputeRepository() ports.ComputeRepository {
	return m.computeRepo
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	return m.routeRepo
}

type MockLocationUoWFactory struct {
	uow *MockUoW
}

func (f *MockLocationUoWFactory) Create() commands.LocationUoW {
	return f.uow
}

type MockComputeUoWFactory struct {
	uow *MockUoW
}

func (f *MockComputeUoWFactory) Create() commands.ComputeUoW {
	return f.uow
}

type MockReconcileUoWFactory struct {
	uow *MockUoW
}

func (f *MockReconcileUoWFactory) Create() commands.ReconcileUoW {
	return f.uow
}
