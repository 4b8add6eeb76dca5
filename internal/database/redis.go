package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis configures a Redis client using the supplied URL.
func ConnectRedis(url string) (*redis.Client, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url must not be empty")
	}

	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(options)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("unable to connect to redis: %w", err)
	}

	return client, nil
}

// LimiterStorage keeps rate limiter counters in Redis so every API replica
// shares the same window. It satisfies fiber.Storage.
type LimiterStorage struct {
	client  redis.UniversalClient
	prefix  string
	timeout time.Duration
}

// NewLimiterStorage wraps a Redis client. Keys are namespaced with prefix.
func NewLimiterStorage(client redis.UniversalClient, prefix string) *LimiterStorage {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &LimiterStorage{client: client, prefix: prefix, timeout: 2 * time.Second}
}

func (s *LimiterStorage) key(key string) string {
	return s.prefix + ":" + key
}

// Get returns nil without an error when the key does not exist.
func (s *LimiterStorage) Get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return value, err
}

func (s *LimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	return s.client.Set(ctx, s.key(key), val, exp).Err()
}

func (s *LimiterStorage) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	return s.client.Del(ctx, s.key(key)).Err()
}

// Reset removes every key under the storage prefix.
func (s *LimiterStorage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	iter := s.client.Scan(ctx, 0, s.prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close is a no-op; the Redis client is owned by the caller.
func (s *LimiterStorage) Close() error {
	return nil
}
