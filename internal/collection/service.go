// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package collection serves the PostgREST-style document surface of the
development backend: one POST and one GET per collection.
*/
package collection

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/taibuivan/jitata-seed/internal/platform/constants"
	"github.com/taibuivan/jitata-seed/internal/platform/validate"
	"github.com/taibuivan/jitata-seed/internal/store"
	"github.com/taibuivan/jitata-seed/pkg/uuidv7"
)

// Service validates documents before they reach the [store.Repository].
type Service struct {
	repository store.Repository
	logger     *slog.Logger
}

func NewService(repository store.Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

/*
Insert stores one document and returns its id.

A document without an "id" member gets a fresh UUIDv7; a present id must
be a UUID string.
*/
func (service *Service) Insert(ctx context.Context, collection string, object map[string]json.RawMessage) (string, error) {
	id, err := documentID(object)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(object)
	if err != nil {
		return "", validate.ErrInvalidJSON
	}

	if err := service.repository.Insert(ctx, collection, id, body); err != nil {
		return "", err
	}

	service.logger.DebugContext(ctx, "document_inserted", slog.String("collection", collection), slog.String("id", id))
	return id, nil
}

// List returns the documents of a collection in insertion order.
func (service *Service) List(ctx context.Context, collection string, page store.Page) ([]json.RawMessage, error) {
	docs, err := service.repository.List(ctx, collection, page)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []json.RawMessage{}
	}
	return docs, nil
}

// documentID reads or assigns the id member of object.
func documentID(object map[string]json.RawMessage) (string, error) {
	raw, ok := object[constants.FieldID]
	if !ok || string(raw) == "null" {
		id := uuidv7.New()
		encoded, _ := json.Marshal(id)
		object[constants.FieldID] = encoded
		return id, nil
	}

	var id string
	v := &validate.Validator{}
	v.Custom(constants.FieldID, json.Unmarshal(raw, &id) != nil, "Must be a string")
	if !v.HasErrors() {
		v.UUID(constants.FieldID, id)
	}
	return id, v.Err()
}
