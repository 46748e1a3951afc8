package store

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore keeps records under "wallet:<key>".
type RedisStore struct {
	client *goredis.Client
	prefix string
}

func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "wallet:",
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, data []byte) error {
	ok, err := s.client.SetNX(ctx, s.prefix+key, data, 0).Result()
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	if !ok {
		return ErrExists
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error { return s.client.Close() }
