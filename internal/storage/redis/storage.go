package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/drophunt/internal/model"
	"github.com/mcoot/drophunt/internal/storage"
)

// Storage is a Redis-backed implementation of the key-value interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance and verifies the connection
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().DialTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.KV = (*Storage)(nil)
var _ storage.Closer = (*Storage)(nil)

// Get returns the value stored under key, or model.ErrKeyNotFound
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, kvKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrKeyNotFound
		}
		return "", err
	}
	return v, nil
}

// Set stores value under key, applying the configured TTL
func (s *Storage) Set(ctx context.Context, key, value string) error {
	var ttl time.Duration
	if s.cfg.KeyTTL > 0 {
		ttl = s.cfg.KeyTTL
	}
	return s.client.Set(ctx, kvKey(key), value, ttl).Err()
}

// Remove deletes key; removing a missing key is not an error
func (s *Storage) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, kvKey(key)).Err()
}
