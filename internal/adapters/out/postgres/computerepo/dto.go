// Package computerepo maps compute jobs to their relational representation
// and owns the conditional terminal transition that serializes callback,
// cancel, and expiry writers.
package computerepo

import (
	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ComputeDTO is the database row for a compute job.
type ComputeDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	Status           string    `gorm:"index"`
	StartTime        int64
	EndTime          int64
	FailReason       string
	TimeLimitSeconds int
}

// TableName overrides GORM's default naming to use "computes".
func (ComputeDTO) TableName() string {
	return "computes"
}

func fromDomain(aggregate *compute.Compute) ComputeDTO {
	return ComputeDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		Status:           aggregate.Status().String(),
		StartTime:        aggregate.StartTime(),
		EndTime:          aggregate.EndTime(),
		FailReason:       aggregate.FailReason(),
		TimeLimitSeconds: aggregate.Policy().TimeLimitSeconds,
	}
}

func toDomain(dto ComputeDTO) (*compute.Compute, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := compute.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return compute.RestoreCompute(
		id, orderID, status,
		dto.StartTime, dto.EndTime, dto.FailReason,
		compute.Policy{TimeLimitSeconds: dto.TimeLimitSeconds},
	)
}
