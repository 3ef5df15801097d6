package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teapotframework/teabrew/pkg/model"
)

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decodeBody[model.HealthResponse](t, w)
	assert.Equal(t, model.HealthStatusOK, resp.Status)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Empty(t, resp.Checks)
}

func TestLiveness(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/health/live", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestReadiness(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/health/ready", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeBody[model.HealthResponse](t, w)
	assert.Equal(t, model.HealthStatusOK, resp.Status)
	require.Len(t, resp.Checks, 2)
	assert.Equal(t, "memory", resp.Checks[0].Name)
	assert.Equal(t, model.HealthStatusOK, resp.Checks[0].Status)
	assert.Equal(t, "database", resp.Checks[1].Name)
	assert.Equal(t, model.HealthStatusOK, resp.Checks[1].Status)
}

func TestBrewCoffee(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/brew", "")
	require.Equal(t, http.StatusTeapot, w.Code)

	resp := decodeBody[model.TeapotErrorResponse](t, w)
	assert.Equal(t, "I'm a teapot", resp.Error)
	assert.Equal(t, "This server is TIF-compliant and cannot brew coffee", resp.Message)
	assert.Equal(t, "https://teapotframework.dev", resp.Spec)
}

func TestOpenAPISpec(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/openapi.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Body.String(), "Tea Brewing API")
	assert.Contains(t, w.Body.String(), `"/teapots"`)
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/coffee", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, model.CodeNotFound, resp.Code)
	assert.Equal(t, "Resource not found", resp.Message)
	assert.Nil(t, resp.Details)
}

func TestMethodNotAllowedReturnsNotFound(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodDelete, "/teapots", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, model.CodeNotFound, resp.Code)
	assert.Equal(t, "Resource not found", resp.Message)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "teabrew_http_requests_total")
	assert.Contains(t, w.Body.String(), `path="/health"`)
}
