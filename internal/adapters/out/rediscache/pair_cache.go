// Package rediscache keeps a hot copy of resolved travel pairs in Redis in
// front of the durable pair store. Pairs are immutable, so cached entries
// never need invalidation.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/core/ports"
	"routeplan/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// CachedPairStore is a read-through decorator over ports.PairStore. Reads
// are served from Redis when every candidate key is resolvable there;
// otherwise the durable store answers and its result is written back.
type CachedPairStore struct {
	client *redis.Client
	inner  ports.PairStore
}

// NewCachedPairStore creates a cache in front of the given durable store.
func NewCachedPairStore(client *redis.Client, inner ports.PairStore) (*CachedPairStore, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if inner == nil {
		return nil, errs.NewValueIsRequiredError("inner")
	}

	return &CachedPairStore{client: client, inner: inner}, nil
}

func pairKey(from kernel.UUID, to kernel.UUID) string {
	return fmt.Sprintf("routeplan:pair:%s:%s", from, to)
}

// absentMarker is stored for directed combinations the durable store does
// not hold, so a fully warmed point set never falls through to Postgres.
const absentMarker = "-"

type pairPayload struct {
	DistanceMeters  int    `json:"distance_meters"`
	DurationMinutes int    `json:"duration_minutes"`
	Polyline        string `json:"polyline,omitempty"`
}

// GetPairs returns every stored directed pair whose endpoints are both in
// ids. When any candidate combination is unknown to the cache, the durable
// store answers and the full candidate set is written back.
func (s *CachedPairStore) GetPairs(ctx context.Context, ids []kernel.UUID) ([]distance.Pair, error) {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(ids)*(len(ids)-1))
	order := make([]distance.Key, 0, len(ids)*(len(ids)-1))
	for _, from := range ids {
		for _, to := range ids {
			if from == to {
				continue
			}
			keys = append(keys, pairKey(from, to))
			order = append(order, distance.Key{From: from, To: to})
		}
	}
	if len(keys) == 0 {
		return []distance.Pair{}, nil
	}

	pairs, complete, err := s.readCached(ctx, keys, order)
	if err == nil && complete {
		return pairs, nil
	}
	// Redis being down degrades to the durable store, it never fails reads.

	stored, err := s.inner.GetPairs(ctx, ids)
	if err != nil {
		return nil, err
	}

	s.writeBack(ctx, order, stored)
	return stored, nil
}

// AddPairs stores resolved pairs durably first, then warms the cache.
func (s *CachedPairStore) AddPairs(ctx context.Context, pairs []distance.Pair) error {
	if err := s.inner.AddPairs(ctx, pairs); err != nil {
		return err
	}

	if len(pairs) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, pair := range pairs {
		data, err := json.Marshal(pairPayload{
			DistanceMeters:  pair.DistanceMeters,
			DurationMinutes: pair.DurationMinutes,
			Polyline:        pair.Polyline,
		})
		if err != nil {
			return err
		}
		pipe.Set(ctx, pairKey(pair.From, pair.To), data, 0)
	}

	// The durable write already succeeded, a failed warm-up only costs a
	// future cache miss.
	_, _ = pipe.Exec(ctx)
	return nil
}

func (s *CachedPairStore) readCached(
	ctx context.Context, keys []string, order []distance.Key,
) ([]distance.Pair, bool, error) {
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, false, err
	}

	pairs := make([]distance.Pair, 0, len(order))
	for i, value := range values {
		if value == nil {
			return nil, false, nil
		}

		raw, ok := value.(string)
		if !ok {
			return nil, false, nil
		}
		if raw == absentMarker {
			continue
		}

		var payload pairPayload
		if unmarshalErr := json.Unmarshal([]byte(raw), &payload); unmarshalErr != nil {
			return nil, false, nil
		}

		pairs = append(pairs, distance.Pair{
			From:            order[i].From,
			To:              order[i].To,
			DistanceMeters:  payload.DistanceMeters,
			DurationMinutes: payload.DurationMinutes,
			Polyline:        payload.Polyline,
		})
	}

	return pairs, true, nil
}

func (s *CachedPairStore) writeBack(ctx context.Context, order []distance.Key, stored []distance.Pair) {
	byKey := make(map[distance.Key]distance.Pair, len(stored))
	for _, pair := range stored {
		byKey[distance.KeyOf(pair)] = pair
	}

	pipe := s.client.Pipeline()
	for _, key := range order {
		pair, ok := byKey[key]
		if !ok {
			pipe.Set(ctx, pairKey(key.From, key.To), absentMarker, 0)
			continue
		}

		data, err := json.Marshal(pairPayload{
			DistanceMeters:  pair.DistanceMeters,
			DurationMinutes: pair.DurationMinutes,
			Polyline:        pair.Polyline,
		})
		if err != nil {
			continue
		}
		pipe.Set(ctx, pairKey(key.From, key.To), data, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return
	}
}
