package ctxstore

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/drixl-io/drixl-go/internal/drixlerr"
)

// keyPrefix namespaces store entries so a shared Redis instance can hold
// other data alongside.
const keyPrefix = "drixl:"

// RedisStore is the networked backend. Expiry rides on Redis TTLs, so the
// lazy-eviction contract holds without any client-side bookkeeping.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis per cfg. An unreachable or misconfigured
// server fails here with a StoreError rather than on first use.
func NewRedisStore(cfg Config) (*RedisStore, error) {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = 6379
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, &drixlerr.StoreError{Op: "connect", Err: err}
	}

	log.Printf("[CtxStore] ✅ Connected to redis at %s:%d (db %d)", host, port, cfg.DB)
	return &RedisStore{client: client}, nil
}

// Set stores value under ref. ttl 0 means no expiry, matching the memory
// backend.
func (s *RedisStore) Set(ctx context.Context, ref, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+ref, value, ttl).Err(); err != nil {
		return &drixlerr.StoreError{Op: "set", Err: err}
	}
	return nil
}

// Get returns the value for ref, or absent if missing or expired.
func (s *RedisStore) Get(ctx context.Context, ref string) (string, bool, error) {
	value, err := s.client.Get(ctx, keyPrefix+ref).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, &drixlerr.StoreError{Op: "get", Err: err}
	}
	return value, true, nil
}

// Delete removes ref. Deleting an absent key is not an error.
func (s *RedisStore) Delete(ctx context.Context, ref string) error {
	if err := s.client.Del(ctx, keyPrefix+ref).Err(); err != nil {
		return &drixlerr.StoreError{Op: "delete", Err: err}
	}
	return nil
}

// Keys returns all live reference ids in sorted order. Redis drops expired
// keys itself, so no filtering is needed here.
func (s *RedisStore) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return nil, &drixlerr.StoreError{Op: "keys", Err: err}
	}
	refs := make([]string, 0, len(keys))
	for _, key := range keys {
		refs = append(refs, strings.TrimPrefix(key, keyPrefix))
	}
	sort.Strings(refs)
	return refs, nil
}

// Clear removes every entry in the store's namespace.
func (s *RedisStore) Clear(ctx context.Context) error {
	keys, err := s.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return &drixlerr.StoreError{Op: "clear", Err: err}
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return &drixlerr.StoreError{Op: "clear", Err: err}
	}
	return nil
}

// Close releases the connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
