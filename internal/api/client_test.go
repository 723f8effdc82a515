// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestDecodesJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vehicles", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "name": "Truck"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api")
	var out []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, client.Get(context.Background(), "/vehicles", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Truck", out[0].Name)
}

func TestRequestSurfacesBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "vehicle not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Get(context.Background(), "/vehicles/99", nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindBackend, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Contains(t, err.Error(), "vehicle not found")
}

func TestRequestPlainStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Get(context.Background(), "/anything", nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindHTTPStatus, apiErr.Kind)
}

func TestRequestCancellation(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Get(ctx, "/vehicles", nil)
	require.Error(t, err)
	assert.True(t, IsCancelled(err))
}

func TestQueryHelper(t *testing.T) {
	assert.Equal(t, "", Query("folder_id", ""))
	assert.Equal(t, "?folder_id=3", Query("folder_id", "3"))
	assert.Equal(t, "?a=1&b=2", Query("a", "1", "b", "2"))
}
