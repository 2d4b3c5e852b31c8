package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	srv, _ := newTestServer()
	RegisterStatusEndpoints(srv)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Traffic Crash Records API", resp.Message)
	assert.NotEmpty(t, resp.Version)
}

func TestStatus_VersionOverride(t *testing.T) {
	t.Setenv("CRASHDB_VERSION_DISPLAY", "9.9.9")

	srv, _ := newTestServer()
	RegisterStatusEndpoints(srv)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "9.9.9", resp.Version)
}

func TestHealth(t *testing.T) {
	srv, stores := newTestServer()
	RegisterStatusEndpoints(srv)

	stores.health.On("Ping").Return(nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	stores.health.AssertExpectations(t)
}

func TestHealth_Unavailable(t *testing.T) {
	srv, stores := newTestServer()
	RegisterStatusEndpoints(srv)

	stores.health.On("Ping").Return(errors.New("connection refused"))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp.Status)
	stores.health.AssertExpectations(t)
}
