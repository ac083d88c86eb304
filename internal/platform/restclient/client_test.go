// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package restclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/jitata-seed/internal/platform/restclient"
)

/*
TestClient_Insert checks the request shape of a write.
*/
func TestClient_Insert(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/rest/v1/labubu_series", request.URL.Path)
		assert.Equal(t, "key", request.Header.Get("apikey"))
		assert.Equal(t, "Bearer key", request.Header.Get("Authorization"))
		assert.Equal(t, "return=minimal", request.Header.Get("Prefer"))
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(request.Body).Decode(&got))
		writer.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client, err := restclient.New(restclient.Config{Endpoint: server.URL + "/", Credential: "key"})
	require.NoError(t, err)

	err = client.Insert(context.Background(), "labubu_series", map[string]string{"id": "1", "name": "A"})
	require.NoError(t, err)
	assert.Equal(t, "A", got["name"])
}

/*
TestClient_InsertStatusError surfaces non-2xx answers as StatusError.
*/
func TestClient_InsertStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusConflict)
		_, _ = writer.Write([]byte(`{"code":"CONFLICT","message":"duplicate id"}`))
	}))
	defer server.Close()

	client, err := restclient.New(restclient.Config{Endpoint: server.URL, Credential: "key"})
	require.NoError(t, err)

	err = client.Insert(context.Background(), "labubu_models", map[string]string{})
	require.Error(t, err)

	var statusErr *restclient.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "duplicate id")
	assert.Contains(t, err.Error(), "HTTP 409")
}

/*
TestClient_List decodes a JSON array listing.
*/
func TestClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodGet, request.Method)
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`[{"id":"a"},{"id":"b"}]`))
	}))
	defer server.Close()

	client, err := restclient.New(restclient.Config{Endpoint: server.URL, Credential: "key"}, restclient.WithRateLimit(1000))
	require.NoError(t, err)

	var rows []struct {
		ID string `json:"id"`
	}
	require.NoError(t, client.List(context.Background(), "labubu_series", &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[1].ID)
}

/*
TestClient_TransportError reports an unreachable backend without panicking.
*/
func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	client, err := restclient.New(restclient.Config{Endpoint: endpoint, Credential: "key"})
	require.NoError(t, err)

	var rows []map[string]any
	assert.Error(t, client.List(context.Background(), "labubu_series", &rows))
}

/*
TestNew_Rejects invalid connection settings.
*/
func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  restclient.Config
	}{
		{"empty_endpoint", restclient.Config{Credential: "k"}},
		{"no_scheme", restclient.Config{Endpoint: "localhost:54321", Credential: "k"}},
		{"no_credential", restclient.Config{Endpoint: "http://localhost:54321"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := restclient.New(tt.cfg)
			assert.Error(t, err)
		})
	}
}
