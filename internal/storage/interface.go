package storage

import (
	"context"
)

// KV is the key-value persistence interface the puzzle engine writes through.
//
// Values are opaque strings (the engine stores JSON). Get returns
// model.ErrKeyNotFound when the key is absent. Each call is independently
// fallible; callers do not retry.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Closer is implemented by backends holding external resources
type Closer interface {
	Close() error
}

// Scoped prefixes every key before delegating to an underlying KV, giving
// each player an isolated namespace in a shared backend
type Scoped struct {
	kv     KV
	prefix string
}

// NewScoped returns a KV that stores key under prefix+key in kv
func NewScoped(kv KV, prefix string) *Scoped {
	return &Scoped{kv: kv, prefix: prefix}
}

var _ KV = (*Scoped)(nil)

func (s *Scoped) Get(ctx context.Context, key string) (string, error) {
	return s.kv.Get(ctx, s.prefix+key)
}

func (s *Scoped) Set(ctx context.Context, key, value string) error {
	return s.kv.Set(ctx, s.prefix+key, value)
}

func (s *Scoped) Remove(ctx context.Context, key string) error {
	return s.kv.Remove(ctx, s.prefix+key)
}
