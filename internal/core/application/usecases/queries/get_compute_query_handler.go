package queries

import (
	"context"
	"database/sql"
	"errors"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetComputeQueryHandler retrieves compute job state from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetComputeQueryHandler struct {
	db *gorm.DB
}

// NewGetComputeQueryHandler creates a handler for compute lookup queries.
// Requires a GORM database connection for query execution.
func NewGetComputeQueryHandler(db *gorm.DB) GetComputeQueryHandler {
	return GetComputeQueryHandler{db: db}
}

// Handle executes the query to retrieve one compute job.
// Returns ObjectNotFoundError when no compute exists with the given id.
func (h GetComputeQueryHandler) Handle(
	ctx context.Context,
	query GetComputeQuery,
) (GetComputeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetComputeQueryResponse{}, err
	}

	var response GetComputeQueryResponse
	var id, orderID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			status,
			start_time,
			end_time,
			fail_reason,
			time_limit_seconds
		FROM computes
		WHERE id = ?
	`, query.ComputeID().Bytes()).Row()

	err := row.Scan(
		&id,
		&orderID,
		&response.Status,
		&response.StartTime,
		&response.EndTime,
		&response.FailReason,
		&response.TimeLimitSeconds,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetComputeQueryResponse{}, errs.NewObjectNotFoundError("compute", query.ComputeID().String())
		}
		return GetComputeQueryResponse{}, err
	}

	computeID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetComputeQueryResponse{}, idErr
	}
	response.ID = computeID

	computeOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
	if idErr != nil {
		return GetComputeQueryResponse{}, idErr
	}
	response.OrderID = computeOrderID

	return response, nil
}
