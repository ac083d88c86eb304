// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/jitata-seed/internal/platform/config"
)

/*
TestLoadClient_Defaults verifies default collection names and file paths.
*/
func TestLoadClient_Defaults(t *testing.T) {
	t.Setenv("SEED_ENDPOINT", "http://localhost:54321")
	t.Setenv("SEED_CREDENTIAL", "secret")

	cfg, err := config.LoadClient()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:54321", cfg.Endpoint)
	assert.Equal(t, "labubu_series", cfg.SeriesCollection)
	assert.Equal(t, "labubu_models", cfg.ModelsCollection)
	assert.Equal(t, "sample_data.json", cfg.InputPath)
	assert.Equal(t, "labubu_verification_report.txt", cfg.ReportPath)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Zero(t, cfg.RequestsPerSecond)
	assert.NoError(t, cfg.Validate())
}

/*
TestClient_Validate rejects a missing endpoint or credential.
*/
func TestClient_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Client
	}{
		{"missing_both", config.Client{}},
		{"missing_credential", config.Client{Endpoint: "http://x"}},
		{"missing_endpoint", config.Client{Credential: "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.Validate(), config.ErrIncomplete)
		})
	}
}

/*
TestPrompt_AsksOnlyForMissingValues checks the interactive fallback.
*/
func TestPrompt_AsksOnlyForMissingValues(t *testing.T) {
	cfg := &config.Client{Endpoint: "http://preset"}
	out := &bytes.Buffer{}

	err := config.Prompt(cfg, strings.NewReader("  key-123  \n"), out)
	require.NoError(t, err)

	assert.Equal(t, "http://preset", cfg.Endpoint)
	assert.Equal(t, "key-123", cfg.Credential)
	assert.NotContains(t, out.String(), "Backend URL")
	assert.Contains(t, out.String(), "Service role key")
}

/*
TestPrompt_EmptyAnswer aborts with ErrIncomplete.
*/
func TestPrompt_EmptyAnswer(t *testing.T) {
	cfg := &config.Client{}

	err := config.Prompt(cfg, strings.NewReader("http://x\n\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, config.ErrIncomplete)
}

/*
TestLoadBackend_RequiresSecret ensures JWT_SECRET is mandatory.
*/
func TestLoadBackend_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.LoadBackend()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "dev-secret")
	cfg, err := config.LoadBackend()
	require.NoError(t, err)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"labubu_series", "labubu_models"}, cfg.Collections())
}
