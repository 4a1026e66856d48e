package rediscache_test

import (
	"context"
	"testing"

	"routeplan/internal/adapters/out/rediscache"
	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPairStore struct {
	mock.Mock
}

func (m *MockPairStore) GetPairs(ctx context.Context, ids []kernel.UUID) ([]distance.Pair, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]distance.Pair), args.Error(1)
}

func (m *MockPairStore) AddPairs(ctx context.Context, pairs []distance.Pair) error {
	args := m.Called(ctx, pairs)
	return args.Error(0)
}

func newCachedStore(t *testing.T) (*rediscache.CachedPairStore, *MockPairStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	inner := new(MockPairStore)
	store, err := rediscache.NewCachedPairStore(client, inner)
	require.NoError(t, err)

	return store, inner
}

func testPairs(a kernel.UUID, b kernel.UUID) []distance.Pair {
	return []distance.Pair{
		{From: a, To: b, DistanceMeters: 1200, DurationMinutes: 4, Polyline: "abc"},
		{From: b, To: a, DistanceMeters: 1300, DurationMinutes: 5},
	}
}

func TestCachedPairStore_ColdCache_FallsThroughAndWarmsUp(t *testing.T) {
	store, inner := newCachedStore(t)

	a := kernel.NewUUID()
	b := kernel.NewUUID()
	ids := []kernel.UUID{a, b}
	stored := testPairs(a, b)

	inner.On("GetPairs", mock.Anything, ids).Return(stored, nil).Once()

	result, err := store.GetPairs(t.Context(), ids)
	require.NoError(t, err)
	assert.ElementsMatch(t, stored, result)

	// Second read is served from the cache without touching the store.
	result, err = store.GetPairs(t.Context(), ids)
	require.NoError(t, err)
	assert.ElementsMatch(t, stored, result)

	inner.AssertExpectations(t)
	inner.AssertNumberOfCalls(t, "GetPairs", 1)
}

func TestCachedPairStore_PartialData_CachesAbsenceToo(t *testing.T) {
	store, inner := newCachedStore(t)

	a := kernel.NewUUID()
	b := kernel.NewUUID()
	ids := []kernel.UUID{a, b}

	// Only one direction exists durably.
	stored := []distance.Pair{{From: a, To: b, DistanceMeters: 900, DurationMinutes: 3}}
	inner.On("GetPairs", mock.Anything, ids).Return(stored, nil).Once()

	result, err := store.GetPairs(t.Context(), ids)
	require.NoError(t, err)
	assert.Len(t, result, 1)

	// The missing direction is remembered, so the warmed cache still
	// answers without a durable read.
	result, err = store.GetPairs(t.Context(), ids)
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, stored[0], result[0])

	inner.AssertNumberOfCalls(t, "GetPairs", 1)
}

func TestCachedPairStore_AddPairs_WritesDurablyAndWarmsCache(t *testing.T) {
	store, inner := newCachedStore(t)

	a := kernel.NewUUID()
	b := kernel.NewUUID()
	pairs := testPairs(a, b)

	inner.On("AddPairs", mock.Anything, pairs).Return(nil).Once()

	require.NoError(t, store.AddPairs(t.Context(), pairs))

	// Reads after AddPairs hit the cache only once the full candidate set
	// is known, which it is here: both directions were just written.
	result, err := store.GetPairs(t.Context(), []kernel.UUID{a, b})
	require.NoError(t, err)
	assert.ElementsMatch(t, pairs, result)

	inner.AssertExpectations(t)
	inner.AssertNotCalled(t, "GetPairs", mock.Anything, mock.Anything)
}

func TestCachedPairStore_AddPairs_DurableFailureSkipsCache(t *testing.T) {
	store, inner := newCachedStore(t)

	a := kernel.NewUUID()
	b := kernel.NewUUID()
	pairs := testPairs(a, b)

	inner.On("AddPairs", mock.Anything, pairs).Return(assert.AnError).Once()

	err := store.AddPairs(t.Context(), pairs)
	require.ErrorIs(t, err, assert.AnError)

	// A failed durable write must not leave pairs visible in the cache.
	inner.On("GetPairs", mock.Anything, []kernel.UUID{a, b}).Return([]distance.Pair{}, nil).Once()

	result, getErr := store.GetPairs(t.Context(), []kernel.UUID{a, b})
	require.NoError(t, getErr)
	assert.Empty(t, result)

	inner.AssertExpectations(t)
}

func TestCachedPairStore_SingleID_ReturnsEmpty(t *testing.T) {
	store, inner := newCachedStore(t)

	result, err := store.GetPairs(t.Context(), []kernel.UUID{kernel.NewUUID()})
	require.NoError(t, err)
	assert.Empty(t, result)

	inner.AssertNotCalled(t, "GetPairs", mock.Anything, mock.Anything)
}

func TestNewCachedPairStore_NilDependencies_ReturnsError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	_, err := rediscache.NewCachedPairStore(nil, new(MockPairStore))
	require.Error(t, err)

	_, err = rediscache.NewCachedPairStore(client, nil)
	require.Error(t, err)
}
