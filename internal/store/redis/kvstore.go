// Package redis implements kv.KV on a Redis server.
package redis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/colonyops/mindflow/internal/core/kv"
	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces mindflow keys inside a shared Redis database.
const DefaultPrefix = "mindflow:"

const (
	connectTimeout = 5 * time.Second
	scanBatch      = 100
)

// KVStore implements kv.KV with one Redis string per key.
type KVStore struct {
	client *redis.Client
	prefix string
}

var _ kv.KV = (*KVStore)(nil)

// Open parses redisURL, connects, and verifies the server is reachable.
func Open(ctx context.Context, redisURL, prefix string) (*KVStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewKVStore(client, prefix), nil
}

// NewKVStore wraps an existing client. An empty prefix selects DefaultPrefix.
func NewKVStore(client *redis.Client, prefix string) *KVStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &KVStore{client: client, prefix: prefix}
}

// Close closes the Redis connection.
func (s *KVStore) Close() error {
	return s.client.Close()
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", kv.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Has(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %q: %w", key, err)
	}
	return n > 0, nil
}

func (s *KVStore) ListKeys(ctx context.Context) ([]string, error) {
	keys := []string{}
	iter := s.client.Scan(ctx, 0, s.prefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}

	slices.Sort(keys)
	return slices.Compact(keys), nil
}
