package queries

import (
	"context"

	"routeplan/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetComputeRoutesQueryHandler retrieves solved routes from the database.
// Routes and stops are fetched in two queries and stitched together in
// memory, which keeps both result sets index-friendly.
type GetComputeRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetComputeRoutesQueryHandler creates a handler for route retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetComputeRoutesQueryHandler(db *gorm.DB) GetComputeRoutesQueryHandler {
	return GetComputeRoutesQueryHandler{db: db}
}

// Handle executes the query to retrieve the routes of one compute.
// Returns an empty slice when the compute has no routes yet.
func (h GetComputeRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetComputeRoutesQuery,
) ([]GetComputeRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes, index, err := h.fetchRoutes(ctx, query.ComputeID())
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return routes, nil
	}

	if err = h.attachStops(ctx, query.ComputeID(), routes, index); err != nil {
		return nil, err
	}

	return routes, nil
}

func (h GetComputeRoutesQueryHandler) fetchRoutes(
	ctx context.Context,
	computeID kernel.UUID,
) ([]GetComputeRoutesQueryResponse, map[kernel.UUID]int, error) {
	routes := make([]GetComputeRoutesQueryResponse, 0)
	index := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_id,
			total_distance,
			total_time,
			total_load
		FROM routes
		WHERE compute_id = ?
		ORDER BY id
	`, computeID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var route GetComputeRoutesQueryResponse
		var id, vehicleID uuid.UUID

		err = rows.Scan(
			&id,
			&vehicleID,
			&route.TotalDistance,
			&route.TotalTime,
			&route.TotalLoad,
		)
		if err != nil {
			return nil, nil, err
		}

		routeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		route.ID = routeID

		routeVehicleID, idErr := kernel.UUIDFromBytes(vehicleID[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		route.VehicleID = routeVehicleID
		route.Stops = make([]RouteStopResponse, 0)

		index[route.ID] = len(routes)
		routes = append(routes, route)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return routes, index, nil
}

func (h GetComputeRoutesQueryHandler) attachStops(
	ctx context.Context,
	computeID kernel.UUID,
	routes []GetComputeRoutesQueryResponse,
	index map[kernel.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.route_id,
			s.location_id,
			s.sequence,
			s.arrival_time,
			s.demand
		FROM route_stops s
		JOIN routes r ON r.id = s.route_id
		WHERE r.compute_id = ?
		ORDER BY s.route_id, s.sequence
	`, computeID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var stop RouteStopResponse
		var routeID, locationID uuid.UUID

		err = rows.Scan(
			&routeID,
			&locationID,
			&stop.Sequence,
			&stop.ArrivalTime,
			&stop.Demand,
		)
		if err != nil {
			return err
		}

		stopRouteID, idErr := kernel.UUIDFromBytes(routeID[:])
		if idErr != nil {
			return idErr
		}

		stopLocationID, idErr := kernel.UUIDFromBytes(locationID[:])
		if idErr != nil {
			return idErr
		}
		stop.LocationID = stopLocationID

		pos, ok := index[stopRouteID]
		if !ok {
			continue
		}
		routes[pos].Stops = append(routes[pos].Stops, stop)
	}

	return rows.Err()
}
