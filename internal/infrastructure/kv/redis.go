package kv

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/dentalcare360/storefront/internal/domain/repository"
)

// RedisStore backs the key-value port with redis. Records have no TTL: the
// store is the durable home of carts, sessions and the users index.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	logger *logrus.Logger
}

func NewRedisStore(rdb *redis.Client, prefix string, logger *logrus.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && s.logger != nil {
			s.logger.WithError(err).WithField("key", key).Warn("redis get failed")
		}
		return "", false
	}
	return val, true
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.prefix+key).Err()
}

var _ repository.KVStore = (*RedisStore)(nil)
