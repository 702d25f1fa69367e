package kvstore

import (
	"context"

	"gwdining/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStore keeps each key as a plain Redis string. Useful when several
// kiosk instances should see the same cart and session.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis at addr and namespaces all keys with
// prefix.
func NewRedisStore(ctx context.Context, addr, password, prefix string) (repository.KVStore, func() error, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, errors.Wrapf(err, "ping redis %s", addr)
	}

	return &redisStore{client: client, prefix: prefix}, client.Close, nil
}

func (s *redisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}

	return s.prefix + ":" + key
}

// Get returns the stored value and whether the key was present.
func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "get key %s", key)
	}

	return value, true, nil
}

// Set stores the value under key, replacing any previous value.
func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return errors.Wrapf(err, "set key %s", key)
	}

	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Wrapf(err, "delete key %s", key)
	}

	return nil
}
