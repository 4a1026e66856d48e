package commands_test

import (
	"testing"
	"time"

	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/domain/model/location"
	"routeplan/internal/core/domain/model/order"
	"routeplan/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

func fixtureLocation(t *testing.T, name string, lat, lng float64) *location.Location {
	t.Helper()

	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)

	l, err := location.NewLocation(kernel.NewUUID(), name, name+" street 1", point)
	require.NoError(t, err)
	return l
}

func fixtureVehicle(t *testing.T, number string, capacity int) *vehicle.Vehicle {
	t.Helper()

	v, err := vehicle.NewVehicle(kernel.NewUUID(), number, capacity)
	require.NoError(t, err)
	return v
}

func fixtureOrder(t *testing.T, locationCount int) *order.Order {
	t.Helper()

	records := make([]order.LocationRecord, 0, locationCount)
	for i := 0; i < locationCount; i++ {
		l := fixtureLocation(t, "stop", 55.7+float64(i)*0.01, 37.6+float64(i)*0.01)
		if i == 0 {
			l.MarkDepot(true)
		}
		records = append(records, order.SnapshotLocation(l))
	}

	vehicles := []order.VehicleRecord{order.SnapshotVehicle(fixtureVehicle(t, "A001", 100))}

	o, err := order.NewOrder(kernel.NewUUID(), records, vehicles, time.Now().Unix())
	require.NoError(t, err)
	return o
}

func fixturePairs(records []order.LocationRecord) []distance.Pair {
	var pairs []distance.Pair
	for _, from := range records {
		for _, to := range records {
			if from.ID.IsEqual(to.ID) {
				continue
			}
			pairs = append(pairs, distance.Pair{
				From:            from.ID,
				To:              to.ID,
				DistanceMeters:  1500,
				DurationMinutes: 7,
			})
		}
	}
	return pairs
}
