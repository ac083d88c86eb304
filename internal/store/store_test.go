// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/jitata-seed/internal/platform/apperr"
	"github.com/taibuivan/jitata-seed/internal/store"
)

func doc(id string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"id":%q}`, id))
}

/*
TestMemoryRepository_InsertList keeps insertion order and pages.
*/
func TestMemoryRepository_InsertList(t *testing.T) {
	ctx := context.Background()
	repository := store.NewMemoryRepository("labubu_series")

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repository.Insert(ctx, "labubu_series", id, doc(id)))
	}

	all, err := repository.List(ctx, "labubu_series", store.Page{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.JSONEq(t, `{"id":"c"}`, string(all[0]))
	assert.JSONEq(t, `{"id":"b"}`, string(all[2]))

	tests := []struct {
		name string
		page store.Page
		want int
	}{
		{"limit", store.Page{Limit: 2}, 2},
		{"offset", store.Page{Offset: 2}, 1},
		{"past_end", store.Page{Offset: 10}, 0},
		{"negative_offset", store.Page{Offset: -1, Limit: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := repository.List(ctx, "labubu_series", tt.page)
			require.NoError(t, err)
			assert.Len(t, docs, tt.want)
		})
	}
}

/*
TestMemoryRepository_Errors covers duplicates and unknown collections.
*/
func TestMemoryRepository_Errors(t *testing.T) {
	ctx := context.Background()
	repository := store.NewMemoryRepository("labubu_models")

	require.NoError(t, repository.Insert(ctx, "labubu_models", "m1", doc("m1")))

	err := repository.Insert(ctx, "labubu_models", "m1", doc("m1"))
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, http.StatusConflict, apperr.As(err).HTTPStatus)

	assert.ErrorIs(t, repository.Insert(ctx, "users", "u1", doc("u1")), store.ErrUnknownCollection)
	_, err = repository.List(ctx, "users", store.Page{})
	assert.ErrorIs(t, err, store.ErrUnknownCollection)

	assert.NoError(t, repository.Ping(ctx))
}

/*
TestMemoryRepository_Concurrent inserts from many goroutines.
*/
func TestMemoryRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repository := store.NewMemoryRepository("labubu_models")

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("m%d", i)
			assert.NoError(t, repository.Insert(ctx, "labubu_models", id, doc(id)))
		}()
	}
	wg.Wait()

	docs, err := repository.List(ctx, "labubu_models", store.Page{})
	require.NoError(t, err)
	assert.Len(t, docs, 50)
}

// fakeCache is an in-memory [store.Cache].
type fakeCache struct {
	mu      sync.Mutex
	values  map[string][]byte
	gets    int
	failGet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.failGet {
		return nil, false, errors.New("connection refused")
	}
	value, ok := f.values[key]
	return value, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

// countingRepository counts List calls reaching the backing store.
type countingRepository struct {
	store.Repository
	lists int
}

func (c *countingRepository) List(ctx context.Context, collection string, page store.Page) ([]json.RawMessage, error) {
	c.lists++
	return c.Repository.List(ctx, collection, page)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestCachedRepository_ReadThrough serves the second listing from the cache
and refreshes it after an insert.
*/
func TestCachedRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	backing := &countingRepository{Repository: store.NewMemoryRepository("labubu_series")}
	cache := newFakeCache()
	repository := store.NewCachedRepository(backing, cache, time.Minute, discardLogger())

	require.NoError(t, repository.Insert(ctx, "labubu_series", "s1", doc("s1")))

	first, err := repository.List(ctx, "labubu_series", store.Page{})
	require.NoError(t, err)
	second, err := repository.List(ctx, "labubu_series", store.Page{})
	require.NoError(t, err)

	assert.Equal(t, 1, backing.lists)
	assert.Equal(t, len(first), len(second))
	assert.Contains(t, cache.values, "seed:collection:labubu_series")

	require.NoError(t, repository.Insert(ctx, "labubu_series", "s2", doc("s2")))
	assert.NotContains(t, cache.values, "seed:collection:labubu_series")

	third, err := repository.List(ctx, "labubu_series", store.Page{})
	require.NoError(t, err)
	assert.Len(t, third, 2)
	assert.Equal(t, 2, backing.lists)
}

/*
TestCachedRepository_Bypass skips the cache for paged reads and cache errors.
*/
func TestCachedRepository_Bypass(t *testing.T) {
	ctx := context.Background()
	backing := &countingRepository{Repository: store.NewMemoryRepository("labubu_series")}
	cache := newFakeCache()
	repository := store.NewCachedRepository(backing, cache, time.Minute, discardLogger())

	_, err := repository.List(ctx, "labubu_series", store.Page{Limit: 5})
	require.NoError(t, err)
	assert.Zero(t, cache.gets)

	cache.failGet = true
	_, err = repository.List(ctx, "labubu_series", store.Page{})
	require.NoError(t, err)
	assert.Equal(t, 2, backing.lists)
}

/*
TestCachedRepository_InsertError leaves the cache untouched.
*/
func TestCachedRepository_InsertError(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	cache.values["seed:collection:labubu_series"] = []byte(`[]`)
	repository := store.NewCachedRepository(store.NewMemoryRepository("labubu_series"), cache, time.Minute, discardLogger())

	assert.Error(t, repository.Insert(ctx, "unknown", "x", doc("x")))
	assert.Contains(t, cache.values, "seed:collection:labubu_series")
}
