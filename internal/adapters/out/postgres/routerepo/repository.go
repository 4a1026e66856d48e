package routerepo

import (
	"context"

	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// Add saves one route and its stops.
func (r *GormRouteRepository) Add(ctx context.Context, route compute.Route, stops []compute.RouteStop) error {
	if err := route.ID.Validate(); err != nil {
		return err
	}
	if len(stops) == 0 {
		return errs.NewValueIsRequiredError("stops")
	}

	routeDTO := fromDomainRoute(route)
	if err := r.db.WithContext(ctx).Create(&routeDTO).Error; err != nil {
		return err
	}

	stopDTOs := make([]RouteStopDTO, 0, len(stops))
	for _, stop := range stops {
		stopDTOs = append(stopDTOs, fromDomainStop(stop))
	}

	return r.db.WithContext(ctx).Create(&stopDTOs).Error
}

// GetByComputeID retrieves the routes of a compute.
func (r *GormRouteRepository) GetByComputeID(ctx context.Context, computeID kernel.UUID) ([]compute.Route, error) {
	if err := computeID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RouteDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "compute_id = ?", computeID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	routes := make([]compute.Route, 0, len(dtos))
	for _, dto := range dtos {
		route, convErr := toDomainRoute(dto)
		if convErr != nil {
			return nil, convErr
		}
		routes = append(routes, route)
	}

	return routes, nil
}

// GetStops retrieves a route's stops ordered by sequence.
func (r *GormRouteRepository) GetStops(ctx context.Context, routeID kernel.UUID) ([]compute.RouteStop, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RouteStopDTO
	err := r.db.WithContext(ctx).
		Order("sequence").
		Find(&dtos, "route_id = ?", routeID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	stops := make([]compute.RouteStop, 0, len(dtos))
	for _, dto := range dtos {
		stop, convErr := toDomainStop(dto)
		if convErr != nil {
			return nil, convErr
		}
		stops = append(stops, stop)
	}

	return stops, nil
}
