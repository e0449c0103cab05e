package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Service is a byte-oriented cache. Values are serialized by the caller;
// GetBytes returns found=false on a miss without error.
type Service interface {
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// SetJSON marshals v and stores it under key.
func SetJSON(ctx context.Context, c Service, key string, v interface{}, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.SetBytes(ctx, key, b, ttl)
}

// GetJSON loads key and unmarshals into dest. Returns false on miss or
// undecodable payload (stale entries are treated as misses).
func GetJSON(ctx context.Context, c Service, key string, dest interface{}) (bool, error) {
	b, ok, err := c.GetBytes(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, nil
	}
	return true, nil
}
