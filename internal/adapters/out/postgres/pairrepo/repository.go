package pairrepo

import (
	"context"

	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPairStore implements ports.PairStore using GORM.
type GormPairStore struct {
	db *gorm.DB
}

// NewGormPairStore creates a new GORM pair store.
func NewGormPairStore(db *gorm.DB) *GormPairStore {
	return &GormPairStore{db: db}
}

// GetPairs returns every cached directed pair whose endpoints are both in
// ids.
func (s *GormPairStore) GetPairs(ctx context.Context, ids []kernel.UUID) ([]distance.Pair, error) {
	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []PairDTO
	err := s.db.WithContext(ctx).
		Find(&dtos, "from_id IN ? AND to_id IN ?", raw, raw).Error
	if err != nil {
		return nil, err
	}

	pairs := make([]distance.Pair, 0, len(dtos))
	for _, dto := range dtos {
		pair, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}

// AddPairs inserts resolved pairs as one batch. Pairs another writer stored
// first are skipped via ON CONFLICT DO NOTHING, keeping existing rows
// untouched.
func (s *GormPairStore) AddPairs(ctx context.Context, pairs []distance.Pair) error {
	if len(pairs) == 0 {
		return nil
	}

	dtos := make([]PairDTO, 0, len(pairs))
	for _, pair := range pairs {
		dtos = append(dtos, fromDomain(pair))
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error
}
