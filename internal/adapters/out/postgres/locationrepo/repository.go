package locationrepo

import (
	"context"
	"errors"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/location"
	"routeplan/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLocationRepository implements ports.LocationRepository using GORM.
type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{db: db, tracker: tracker}
}

// Add saves a new location.
func (r *GormLocationRepository) Add(ctx context.Context, aggregate *location.Location) error {
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

// Update saves an existing location.
func (r *GormLocationRepository) Update(ctx context.Context, aggregate *location.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LocationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("location", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a location by id regardless of status.
func (r *GormLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves active locations for the given ids, preserving the
// requested order. Any missing or deleted id fails the whole read.
func (r *GormLocationRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*location.Location, error) {
	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []LocationDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "id IN ? AND status = ?", raw, kernel.EntityActive.String()).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*location.Location, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		byID[aggregate.ID()] = aggregate
	}

	aggregates := make([]*location.Location, 0, len(ids))
	for _, id := range ids {
		aggregate, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("location", id.String())
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

// GetAllActive retrieves every active location.
func (r *GormLocationRepository) GetAllActive(ctx context.Context) ([]*location.Location, error) {
	var dtos []LocationDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ?", kernel.EntityActive.String()).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]*location.Location, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}
