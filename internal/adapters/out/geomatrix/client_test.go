package geomatrix_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"routeplan/internal/adapters/out/geomatrix"
	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPoints(t *testing.T) []kernel.GeoPoint {
	t.Helper()

	a, err := kernel.NewGeoPoint(55.75, 37.61)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(55.76, 37.62)
	require.NoError(t, err)

	return []kernel.GeoPoint{a, b}
}

func matrixBody(elements ...map[string]any) []byte {
	body, _ := json.Marshal(map[string]any{"elements": elements})
	return body
}

func TestClient_ComputeMatrix_DecodesElements(t *testing.T) {
	var gotPath string
	var gotAuth string
	var gotPayload struct {
		Points []struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"points"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(matrixBody(
			map[string]any{
				"originIndex": 0, "destinationIndex": 1,
				"distanceMeters": 1200, "durationMinutes": 4,
				"condition": "ROUTE_EXISTS",
			},
			map[string]any{
				"originIndex": 1, "destinationIndex": 0,
				"condition": "ROUTE_NOT_FOUND",
			},
		))
	}))
	defer server.Close()

	client, err := geomatrix.NewClient(server.URL, "test-key")
	require.NoError(t, err)

	elements, err := client.ComputeMatrix(t.Context(), testPoints(t))
	require.NoError(t, err)

	assert.Equal(t, "/v1/matrix", gotPath)
	assert.Equal(t, "test-key", gotAuth)
	require.Len(t, gotPayload.Points, 2)
	assert.InDelta(t, 55.75, gotPayload.Points[0].Lat, 0.0001)

	require.Len(t, elements, 2)
	assert.Equal(t, distance.Element{
		OriginIndex:      0,
		DestinationIndex: 1,
		DistanceMeters:   1200,
		DurationMinutes:  4,
		Condition:        distance.RouteExists,
	}, elements[0])
	assert.Equal(t, distance.RouteNotFound, elements[1].Condition)
}

func TestClient_ComputeMatrix_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(matrixBody(map[string]any{
			"originIndex": 0, "destinationIndex": 1,
			"distanceMeters": 900, "durationMinutes": 3,
			"condition": "ROUTE_EXISTS",
		}))
	}))
	defer server.Close()

	client, err := geomatrix.NewClient(server.URL, "")
	require.NoError(t, err)

	elements, err := client.ComputeMatrix(t.Context(), testPoints(t))
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	require.Len(t, elements, 1)
	assert.Equal(t, 900, elements[0].DistanceMeters)
}

func TestClient_ComputeMatrix_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad points"))
	}))
	defer server.Close()

	client, err := geomatrix.NewClient(server.URL, "")
	require.NoError(t, err)

	_, err = client.ComputeMatrix(t.Context(), testPoints(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad points")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_ComputeMatrix_NoPoints_ReturnsError(t *testing.T) {
	client, err := geomatrix.NewClient("http://localhost:9", "")
	require.NoError(t, err)

	_, err = client.ComputeMatrix(t.Context(), nil)
	require.Error(t, err)
}

func TestNewClient_EmptyBaseURL_ReturnsError(t *testing.T) {
	_, err := geomatrix.NewClient("", "key")
	require.Error(t, err)
}
