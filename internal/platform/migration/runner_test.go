// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/jitata-seed/internal/platform/migration"
)

/*
TestDatabaseURL rewrites postgres schemes to pgx5.
*/
func TestDatabaseURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"postgres://u:p@localhost:5432/seed", "pgx5://u:p@localhost:5432/seed"},
		{"postgresql://localhost/seed?sslmode=disable", "pgx5://localhost/seed?sslmode=disable"},
		{"pgx5://localhost/seed", "pgx5://localhost/seed"},
		{"host=localhost dbname=seed", "host=localhost dbname=seed"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.DatabaseURL(tt.input))
		})
	}
}

/*
TestSourceURL prefixes the file scheme.
*/
func TestSourceURL(t *testing.T) {
	assert.Equal(t, "file://./data/migrations", migration.SourceURL("./data/migrations"))
}
