package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "farmareach:"

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// RedisTokenStore persists the token in Redis without expiry; the backend
// decides when it is no longer valid.
type RedisTokenStore struct {
	Client *redis.Client
}

func NewRedisTokenStore(cfg RedisConfig) *RedisTokenStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &RedisTokenStore{Client: rdb}
}

func (s *RedisTokenStore) Ping(ctx context.Context) error {
	if err := s.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Get(ctx context.Context) (string, error) {
	token, err := s.Client.Get(ctx, redisKeyPrefix+TokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get token: %w", err)
	}
	return token, nil
}

func (s *RedisTokenStore) Set(ctx context.Context, token string) error {
	return s.Client.Set(ctx, redisKeyPrefix+TokenKey, token, 0).Err()
}

func (s *RedisTokenStore) Delete(ctx context.Context) error {
	return s.Client.Del(ctx, redisKeyPrefix+TokenKey).Err()
}

func (s *RedisTokenStore) Close() error {
	return s.Client.Close()
}
