// README: Preference store backed by Redis string keys.
package preference

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store persists per-user preference fields as plain strings.
type Store interface {
	Get(ctx context.Context, userID, field string) (string, bool, error)
	Set(ctx context.Context, userID, field, value string) error
}

const keyPrefix = "pref:%s:%s"

type RedisStore struct {
	redis *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client}
}

func (s *RedisStore) Get(ctx context.Context, userID, field string) (string, bool, error) {
	val, err := s.redis.Get(ctx, prefKey(userID, field)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, userID, field, value string) error {
	return s.redis.Set(ctx, prefKey(userID, field), value, 0).Err()
}

func prefKey(userID, field string) string {
	return fmt.Sprintf(keyPrefix, userID, field)
}
