// Package pairrepo maps cached travel pairs to their relational
// representation. The table is append-only: pairs are inserted with
// conflict-ignore semantics and never updated or deleted.
package pairrepo

import (
	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PairDTO is the database row for one directed travel pair. The composite
// primary key doubles as the dedup guard for concurrent backfills.
type PairDTO struct {
	FromID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ToID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DistanceMeters  int
	DurationMinutes int
	Polyline        string
}

// TableName overrides GORM's default naming to use "distance_pairs".
func (PairDTO) TableName() string {
	return "distance_pairs"
}

func fromDomain(pair distance.Pair) PairDTO {
	return PairDTO{
		FromID:          pair.From.Bytes(),
		ToID:            pair.To.Bytes(),
		DistanceMeters:  pair.DistanceMeters,
		DurationMinutes: pair.DurationMinutes,
		Polyline:        pair.Polyline,
	}
}

func toDomain(dto PairDTO) (distance.Pair, error) {
	from, err := kernel.UUIDFromBytes(dto.FromID[:])
	if err != nil {
		return distance.Pair{}, err
	}

	to, err := kernel.UUIDFromBytes(dto.ToID[:])
	if err != nil {
		return distance.Pair{}, err
	}

	return distance.Pair{
		From:            from,
		To:              to,
		DistanceMeters:  dto.DistanceMeters,
		DurationMinutes: dto.DurationMinutes,
		Polyline:        dto.Polyline,
	}, nil
}
