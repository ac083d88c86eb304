// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package store persists collection documents for the development backend.

Every collection is an append-only list of JSON objects keyed by their
"id" field. Listing returns documents in insertion order.

Implementations:

  - [MemoryRepository]: default, process-local.
  - [PostgresRepository]: one JSONB table per collection.
  - [CachedRepository]: read-through listing cache in front of either.
*/
package store

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/taibuivan/jitata-seed/internal/platform/apperr"
)

// ErrUnknownCollection is returned for collections the backend does not serve.
var ErrUnknownCollection = apperr.NotFound("Collection")

// Page bounds a listing. A zero Limit means no bound.
type Page struct {
	Limit  int
	Offset int
}

// Repository stores documents per collection.
type Repository interface {
	Insert(ctx context.Context, collection, id string, body json.RawMessage) error
	List(ctx context.Context, collection string, page Page) ([]json.RawMessage, error)
	Ping(ctx context.Context) error
}

// known reports whether collection is one of the served collections.
func known(collections []string, collection string) bool {
	return slices.Contains(collections, collection)
}

// window applies page to a slice of n items and returns its bounds.
func window(n int, page Page) (start, end int) {
	start = min(max(page.Offset, 0), n)
	end = n
	if page.Limit > 0 {
		end = min(start+page.Limit, n)
	}
	return start, end
}
