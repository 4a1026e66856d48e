// Package orderrepo maps order aggregates, including their immutable
// location and vehicle snapshots, to their relational representation.
// Snapshots are stored as JSONB documents: they are point-in-time copies
// that are never joined back to the catalog tables.
package orderrepo

import (
	"encoding/json"

	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Locations []byte    `gorm:"type:jsonb"`
	Vehicles  []byte    `gorm:"type:jsonb"`
	Status    string    `gorm:"index"`
	CreatedAt int64
	UpdatedAt int64
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// locationRecordDTO is the JSON shape of one location snapshot entry.
type locationRecordDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Pickup      int     `json:"pickup"`
	Delivery    int     `json:"delivery"`
	ServiceTime int     `json:"service_time"`
	WindowStart int     `json:"window_start"`
	WindowEnd   int     `json:"window_end"`
	IsDepot     bool    `json:"is_depot"`
}

// vehicleRecordDTO is the JSON shape of one vehicle snapshot entry.
type vehicleRecordDTO struct {
	ID        string `json:"id"`
	Number    string `json:"number"`
	Capacity  int    `json:"capacity"`
	FixedCost int    `json:"fixed_cost"`
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	locationDTOs := make([]locationRecordDTO, 0, len(aggregate.Locations()))
	for _, record := range aggregate.Locations() {
		locationDTOs = append(locationDTOs, locationRecordDTO{
			ID:          record.ID.String(),
			Name:        record.Name,
			Lat:         record.Point.Lat(),
			Lng:         record.Point.Lng(),
			Pickup:      record.Pickup,
			Delivery:    record.Delivery,
			ServiceTime: record.ServiceTime,
			WindowStart: record.Window.Start(),
			WindowEnd:   record.Window.End(),
			IsDepot:     record.IsDepot,
		})
	}

	vehicleDTOs := make([]vehicleRecordDTO, 0, len(aggregate.Vehicles()))
	for _, record := range aggregate.Vehicles() {
		vehicleDTOs = append(vehicleDTOs, vehicleRecordDTO{
			ID:        record.ID.String(),
			Number:    record.Number,
			Capacity:  record.Capacity,
			FixedCost: record.FixedCost,
		})
	}

	locationsJSON, err := json.Marshal(locationDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	vehiclesJSON, err := json.Marshal(vehicleDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		Locations: locationsJSON,
		Vehicles:  vehiclesJSON,
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var locationDTOs []locationRecordDTO
	if err = json.Unmarshal(dto.Locations, &locationDTOs); err != nil {
		return nil, err
	}

	var vehicleDTOs []vehicleRecordDTO
	if err = json.Unmarshal(dto.Vehicles, &vehicleDTOs); err != nil {
		return nil, err
	}

	locationRecords := make([]order.LocationRecord, 0, len(locationDTOs))
	for _, record := range locationDTOs {
		converted, convErr := toLocationRecord(record)
		if convErr != nil {
			return nil, convErr
		}
		locationRecords = append(locationRecords, converted)
	}

	vehicleRecords := make([]order.VehicleRecord, 0, len(vehicleDTOs))
	for _, record := range vehicleDTOs {
		recordID, convErr := kernel.UUIDFromString(record.ID)
		if convErr != nil {
			return nil, convErr
		}
		vehicleRecords = append(vehicleRecords, order.VehicleRecord{
			ID:        recordID,
			Number:    record.Number,
			Capacity:  record.Capacity,
			FixedCost: record.FixedCost,
		})
	}

	status, err := kernel.EntityStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, locationRecords, vehicleRecords, status, dto.CreatedAt, dto.UpdatedAt)
}

func toLocationRecord(dto locationRecordDTO) (order.LocationRecord, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return order.LocationRecord{}, err
	}

	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return order.LocationRecord{}, err
	}

	window, err := kernel.NewTimeWindow(dto.WindowStart, dto.WindowEnd)
	if err != nil {
		return order.LocationRecord{}, err
	}

	return order.LocationRecord{
		ID:          id,
		Name:        dto.Name,
		Point:       point,
		Pickup:      dto.Pickup,
		Delivery:    dto.Delivery,
		ServiceTime: dto.ServiceTime,
		Window:      window,
		IsDepot:     dto.IsDepot,
	}, nil
}
