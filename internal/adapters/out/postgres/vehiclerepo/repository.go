package vehiclerepo

import (
	"context"
	"errors"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/vehicle"
	"routeplan/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{db: db, tracker: tracker}
}

// Add saves a new vehicle.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
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

// Update saves an existing vehicle.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vehicle by id regardless of status.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves active vehicles for the given ids, preserving the
// requested order. Any missing or deleted id fails the whole read.
func (r *GormVehicleRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*vehicle.Vehicle, error) {
	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []VehicleDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "id IN ? AND status = ?", raw, kernel.EntityActive.String()).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*vehicle.Vehicle, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		byID[aggregate.ID()] = aggregate
	}

	aggregates := make([]*vehicle.Vehicle, 0, len(ids))
	for _, id := range ids {
		aggregate, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

// GetAllActive retrieves every active vehicle.
func (r *GormVehicleRepository) GetAllActive(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ?", kernel.EntityActive.String()).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}
