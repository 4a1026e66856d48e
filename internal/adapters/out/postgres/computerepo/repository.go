package computerepo

import (
	"context"
	"errors"

	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormComputeRepository implements ports.ComputeRepository using GORM.
type GormComputeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormComputeRepository creates a new GORM compute repository.
func NewGormComputeRepository(db *gorm.DB, tracker aggregateTracker) *GormComputeRepository {
	return &GormComputeRepository{db: db, tracker: tracker}
}

// Add saves a new compute job.
func (r *GormComputeRepository) Add(ctx context.Context, aggregate *compute.Compute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a compute by id.
func (r *GormComputeRepository) Get(ctx context.Context, id kernel.UUID) (*compute.Compute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ComputeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("compute", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Finish applies a terminal transition guarded at the storage level: the
// update only matches rows whose status is not terminal yet, so concurrent
// writers are serialized by the database and exactly one wins.
func (r *GormComputeRepository) Finish(
	ctx context.Context, id kernel.UUID, status compute.Status, failReason string, endTime int64,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !status.IsTerminal() {
		return errs.NewValueIsInvalidError("status")
	}

	terminal := []string{
		compute.Completed.String(),
		compute.Failed.String(),
		compute.Cancelled.String(),
	}

	result := r.db.WithContext(ctx).
		Model(&ComputeDTO{}).
		Where("id = ? AND status NOT IN ?", id.Bytes(), terminal).
		Updates(map[string]any{
			"status":      status.String(),
			"fail_reason": failReason,
			"end_time":    endTime,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing row from one that lost the race.
		current, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		return compute.NewAlreadyTerminalError(current.Status(), actionName(status))
	}

	return nil
}

func actionName(status compute.Status) string {
	switch status {
	case compute.Completed:
		return "complete"
	case compute.Failed:
		return "fail"
	case compute.Cancelled:
		return "cancel"
	default:
		return status.String()
	}
}

// GetAllPendingBefore retrieves pending computes started before the cutoff.
func (r *GormComputeRepository) GetAllPendingBefore(ctx context.Context, cutoff int64) ([]*compute.Compute, error) {
	var dtos []ComputeDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND start_time < ?", compute.Pending.String(), cutoff).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]*compute.Compute, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}
