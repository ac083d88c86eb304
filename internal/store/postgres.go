// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/jitata-seed/internal/platform/database/schema"
	"github.com/taibuivan/jitata-seed/internal/platform/dberr"
	"github.com/taibuivan/jitata-seed/internal/platform/postgres"
)

// PostgresRepository stores each collection in its own JSONB table.
type PostgresRepository struct {
	db          *pgxpool.Pool
	collections []string
}

// NewPostgresRepository serves the named collections from db. Tables are
// created by the migrations in data/migrations.
func NewPostgresRepository(db *pgxpool.Pool, collections ...string) *PostgresRepository {
	return &PostgresRepository{db: db, collections: collections}
}

func (repository *PostgresRepository) Insert(ctx context.Context, collection, id string, body json.RawMessage) error {
	if !known(repository.collections, collection) {
		return ErrUnknownCollection
	}
	table := schema.Document(collection)

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2::jsonb)`, table.Table, table.ID, table.Body)

	_, err := repository.db.Exec(ctx, query, id, string(body))
	return dberr.Wrap(err, "insert_document")
}

func (repository *PostgresRepository) List(ctx context.Context, collection string, page Page) ([]json.RawMessage, error) {
	if !known(repository.collections, collection) {
		return nil, ErrUnknownCollection
	}
	table := schema.Document(collection)

	// LIMIT NULL is unbounded.
	var limit any
	if page.Limit > 0 {
		limit = page.Limit
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1 OFFSET $2
	`,
		table.Body, table.Table, table.CreatedAt, table.ID,
	)

	rows, err := repository.db.Query(ctx, query, limit, max(page.Offset, 0))
	if err != nil {
		return nil, dberr.Wrap(err, "list_documents")
	}
	defer rows.Close()

	docs := []json.RawMessage{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, dberr.Wrap(err, "scan_document")
		}
		docs = append(docs, body)
	}

	return docs, dberr.Wrap(rows.Err(), "list_documents")
}

func (repository *PostgresRepository) Ping(ctx context.Context) error {
	return postgres.Ping(ctx, repository.db)
}
