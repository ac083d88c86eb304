// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/taibuivan/jitata-seed/internal/platform/constants"
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// CachedRepository caches unbounded listings and drops them on insert.
// Cache failures are logged and fall through to the wrapped repository.
type CachedRepository struct {
	next   Repository
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository wraps next with a listing cache.
func NewCachedRepository(next Repository, cache Cache, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

func listingKey(collection string) string {
	return constants.RedisPrefixCollection + collection
}

func (repository *CachedRepository) Insert(ctx context.Context, collection, id string, body json.RawMessage) error {
	if err := repository.next.Insert(ctx, collection, id, body); err != nil {
		return err
	}

	if err := repository.cache.Delete(ctx, listingKey(collection)); err != nil {
		repository.logger.Warn("cache_invalidate_failed", slog.String("collection", collection), slog.Any("error", err))
	}
	return nil
}

func (repository *CachedRepository) List(ctx context.Context, collection string, page Page) ([]json.RawMessage, error) {
	if page != (Page{}) {
		return repository.next.List(ctx, collection, page)
	}

	key := listingKey(collection)
	if raw, ok, err := repository.cache.Get(ctx, key); err != nil {
		repository.logger.Warn("cache_read_failed", slog.String("key", key), slog.Any("error", err))
	} else if ok {
		var docs []json.RawMessage
		if err := json.Unmarshal(raw, &docs); err == nil {
			return docs, nil
		}
	}

	docs, err := repository.next.List(ctx, collection, page)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(docs); err == nil {
		if err := repository.cache.Set(ctx, key, raw, repository.ttl); err != nil {
			repository.logger.Warn("cache_write_failed", slog.String("key", key), slog.Any("error", err))
		}
	}
	return docs, nil
}

func (repository *CachedRepository) Ping(ctx context.Context) error {
	return repository.next.Ping(ctx)
}
