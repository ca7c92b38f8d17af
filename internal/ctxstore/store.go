// Package ctxstore implements the shared context store agents use to pass
// reference ids instead of repeating full context in every message.
//
// A message carries a `[ctx:<id>]` token; whoever receives it resolves the
// id here. Two backends: an in-process map and Redis, selected by Config,
// with identical semantics.
package ctxstore

import (
	"context"
	"fmt"
	"time"

	"github.com/drixl-io/drixl-go/internal/drixlerr"
)

// Backend kinds recognized by Open.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Store is the contract both backends satisfy.
//
// TTL semantics: ttl 0 means the entry never expires; a positive ttl sets
// an absolute expiry of now+ttl. A Get or Keys call that touches an
// expired entry evicts it and behaves as if it never existed — callers
// never observe a key that has outlived its ttl. Eviction is entirely
// lazy; there is no background sweep, so memory for unread expired keys
// is reclaimed only on the next access.
type Store interface {
	Set(ctx context.Context, ref, value string, ttl time.Duration) error
	Get(ctx context.Context, ref string) (string, bool, error)
	Delete(ctx context.Context, ref string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
	Close() error
}

// Config selects and parameterizes a store backend. An empty Backend
// means memory.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	Host     string `json:"host,omitempty" yaml:"host,omitempty"`
	Port     int    `json:"port,omitempty" yaml:"port,omitempty"`
	DB       int    `json:"db,omitempty" yaml:"db,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
}

// Open constructs the configured backend. Backend misconfiguration and an
// unreachable Redis both fail here, at construction time, not on first use.
func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		return NewRedisStore(cfg)
	default:
		return nil, &drixlerr.StoreError{Op: "open", Err: fmt.Errorf("unknown backend %q (use %s or %s)", cfg.Backend, BackendMemory, BackendRedis)}
	}
}
