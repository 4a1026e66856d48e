package queries

import (
	"context"

	"routeplan/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllVehiclesQueryHandler retrieves active fleet vehicles from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVehiclesQueryHandler creates a handler for vehicle retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllVehiclesQueryHandler(db *gorm.DB) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{db: db}
}

// Handle executes the query to retrieve all active vehicles.
// Returns a slice of vehicle read models sorted by registration number.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]GetAllVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetAllVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			capacity,
			fixed_cost
		FROM vehicles
		WHERE status = 'active'
		ORDER BY number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var vehicle GetAllVehiclesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&vehicle.Number,
			&vehicle.Capacity,
			&vehicle.FixedCost,
		)
		if err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		vehicle.ID = vehicleID

		vehicles = append(vehicles, vehicle)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
