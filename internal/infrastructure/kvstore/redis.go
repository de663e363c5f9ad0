package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each key as a plain string value without expiry.
type RedisStore struct {
	client *redis.Client
	prefix string // Key prefix, e.g., "helpdesk:"
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}

	data, err := s.client.Get(ctx, s.buildKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get key %s from redis: %w", key, err)
	}
	return true, decode(key, data, dest)
}

func (s *RedisStore) Set(ctx context.Context, key string, value any) error {
	data, err := encode(key, value)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.buildKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.client.Del(ctx, s.buildKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s from redis: %w", key, err)
	}
	return nil
}

func (s *RedisStore) buildKey(key string) string {
	return s.prefix + key
}
