package queries

import (
	"context"

	"routeplan/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllComputesQueryHandler retrieves compute job listings from the
// database, newest first.
type GetAllComputesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllComputesQueryHandler creates a handler for compute listings.
// Requires a GORM database connection for query execution.
func NewGetAllComputesQueryHandler(db *gorm.DB) GetAllComputesQueryHandler {
	return GetAllComputesQueryHandler{db: db}
}

// Handle executes the query to list compute jobs matching the filters.
func (h GetAllComputesQueryHandler) Handle(
	ctx context.Context,
	query GetAllComputesQuery,
) ([]GetAllComputesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_id,
			status,
			start_time,
			end_time,
			fail_reason,
			time_limit_seconds
		FROM computes
		WHERE 1 = 1
	`
	args := make([]interface{}, 0, 2)

	if query.OrderID().Validate() == nil {
		sql += " AND order_id = ?"
		args = append(args, query.OrderID().Bytes())
	}
	if query.Status() != "" {
		sql += " AND status = ?"
		args = append(args, query.Status())
	}
	sql += " ORDER BY start_time DESC"

	computes := make([]GetAllComputesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllComputesQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&response.Status,
			&response.StartTime,
			&response.EndTime,
			&response.FailReason,
			&response.TimeLimitSeconds,
		)
		if err != nil {
			return nil, err
		}

		computeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = computeID

		computeOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.OrderID = computeOrderID

		computes = append(computes, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return computes, nil
}
