// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/taibuivan/jitata-seed/internal/platform/apperr"
)

type memoryCollection struct {
	order []string
	docs  map[string]json.RawMessage
}

// MemoryRepository keeps documents in process memory.
type MemoryRepository struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
}

// NewMemoryRepository serves exactly the named collections.
func NewMemoryRepository(collections ...string) *MemoryRepository {
	repository := &MemoryRepository{collections: make(map[string]*memoryCollection, len(collections))}
	for _, name := range collections {
		repository.collections[name] = &memoryCollection{docs: map[string]json.RawMessage{}}
	}
	return repository
}

// Insert appends a document. A duplicate id yields a Conflict error.
func (repository *MemoryRepository) Insert(_ context.Context, collection, id string, body json.RawMessage) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	bucket, ok := repository.collections[collection]
	if !ok {
		return ErrUnknownCollection
	}
	if _, exists := bucket.docs[id]; exists {
		return apperr.Conflict("A record with this id already exists")
	}

	bucket.docs[id] = append(json.RawMessage(nil), body...)
	bucket.order = append(bucket.order, id)
	return nil
}

// List returns the documents of a collection in insertion order.
func (repository *MemoryRepository) List(_ context.Context, collection string, page Page) ([]json.RawMessage, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	bucket, ok := repository.collections[collection]
	if !ok {
		return nil, ErrUnknownCollection
	}

	start, end := window(len(bucket.order), page)
	docs := make([]json.RawMessage, 0, end-start)
	for _, id := range bucket.order[start:end] {
		docs = append(docs, bucket.docs[id])
	}
	return docs, nil
}

// Ping always succeeds.
func (repository *MemoryRepository) Ping(context.Context) error {
	return nil
}
