// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores opaque values under string keys.
type Cache struct {
	client redis.UniversalClient
}

// NewCache wraps a connected client.
func NewCache(client redis.UniversalClient) *Cache {
	return &Cache{client: client}
}

// Get returns the value of key. A missing key is reported as ok == false,
// not as an error.
func (c *Cache) Get(context stdctx.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(context, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key for ttl. A zero ttl keeps the key forever.
func (c *Cache) Set(context stdctx.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(context, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Delete removes keys; absent keys are ignored.
func (c *Cache) Delete(context stdctx.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(context, keys...).Err(); err != nil {
		return fmt.Errorf("redis: del: %w", err)
	}
	return nil
}
