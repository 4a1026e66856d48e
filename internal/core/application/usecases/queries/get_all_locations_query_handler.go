package queries

import (
	"context"

	"routeplan/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllLocationsQueryHandler retrieves active locations from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllLocationsQueryHandler(db)
//	query := NewGetAllLocationsQuery()
//
//	locations, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get locations: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d locations\n", len(locations))
type GetAllLocationsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllLocationsQueryHandler creates a handler for location retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllLocationsQueryHandler(db *gorm.DB) GetAllLocationsQueryHandler {
	return GetAllLocationsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active locations.
// Returns a slice of location read models sorted by name.
// Converts database types to domain types for consistency.
func (h GetAllLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetAllLocationsQuery,
) ([]GetAllLocationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations := make([]GetAllLocationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			lat,
			lng,
			pickup,
			delivery,
			service_time,
			window_start,
			window_end,
			is_depot
		FROM locations
		WHERE status = 'active'
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var location GetAllLocationsQueryResponse
		var id uuid.UUID
		var lat, lng float64
		var windowStart, windowEnd int

		err = rows.Scan(
			&id,
			&location.Name,
			&location.Address,
			&lat,
			&lng,
			&location.Pickup,
			&location.Delivery,
			&location.ServiceTime,
			&windowStart,
			&windowEnd,
			&location.IsDepot,
		)
		if err != nil {
			return nil, err
		}

		locationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		location.ID = locationID

		point, pointErr := kernel.NewGeoPoint(lat, lng)
		if pointErr != nil {
			return nil, pointErr
		}
		location.Point = point

		window, windowErr := kernel.NewTimeWindow(windowStart, windowEnd)
		if windowErr != nil {
			return nil, windowErr
		}
		location.Window = window

		locations = append(locations, location)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
