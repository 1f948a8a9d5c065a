package repository

import (
	"context"
	"errors"
	"time"

	"vendor_registration/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisTTLStore keeps TTL entries in Redis and relies on native key expiry.
type RedisTTLStore struct {
	rdb redis.UniversalClient
}

var _ interfaces.ITTLStore = (*RedisTTLStore)(nil)

func NewRedisTTLStore(rdb redis.UniversalClient) *RedisTTLStore {
	return &RedisTTLStore{rdb: rdb}
}

func (s *RedisTTLStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisTTLStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

func (s *RedisTTLStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
