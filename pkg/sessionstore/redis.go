package sessionstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on a single Redis key. The configured TTL is
// applied on every Write so a token can never outlive its session scope.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store using an existing client.
func NewRedisStore(client *redis.Client, cfg Config) *RedisStore {
	if cfg.Key == "" {
		cfg.Key = DefaultConfig().Key
	}
	return &RedisStore{
		client: client,
		key:    cfg.Key,
		ttl:    cfg.TTL,
	}
}

// NewRedisStoreFromConfig connects to Redis using the provided configuration
// and returns a store bound to the configured key. The connection is retried
// RetryAttempts times with RetryInterval between attempts.
func NewRedisStoreFromConfig(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidConnString, err)
	}

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return NewRedisStore(client, cfg.Config), nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

// Read returns the persisted token or ErrTokenNotFound.
func (s *RedisStore) Read(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrTokenNotFound
		}
		return "", errors.Join(ErrStorageUnavailable, err)
	}
	return token, nil
}

// Write persists the token under the configured key with the session TTL.
func (s *RedisStore) Write(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return errors.Join(ErrStorageUnavailable, err)
	}
	return nil
}

// Clear removes the persisted token. Deleting a missing key is a no-op.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Join(ErrStorageUnavailable, err)
	}
	return nil
}

// Close releases the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
