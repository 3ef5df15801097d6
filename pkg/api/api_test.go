package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/teapotframework/teabrew/pkg/config"
	"github.com/teapotframework/teabrew/pkg/metrics"
	"github.com/teapotframework/teabrew/pkg/model"
	"github.com/teapotframework/teabrew/pkg/store"
)

const (
	validTeapotBody = `{"name": "Brown Betty", "material": "ceramic", "capacityMl": 700}`
	validTeaBody    = `{"name": "Sencha", "type": "green", "steepTempCelsius": 75, "steepTimeSeconds": 90}`
)

// newTestServer builds a server on a fresh in-memory store with the
// default configuration: events on, rate limiting off.
func newTestServer(t *testing.T) *server {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	st := store.NewMemoryStore(log)
	require.NoError(t, st.Start(context.Background()))
	t.Cleanup(func() { _ = st.Stop() })

	return NewServer(log, config.Default(), st, metrics.New()).(*server)
}

func doRequest(t *testing.T, s *server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())

	return out
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()

	return decodeBody[model.ErrorResponse](t, w)
}

func createTeapot(t *testing.T, s *server) model.Teapot {
	t.Helper()

	w := doRequest(t, s, http.MethodPost, "/teapots", validTeapotBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return decodeBody[model.Teapot](t, w)
}

func createTea(t *testing.T, s *server) model.Tea {
	t.Helper()

	w := doRequest(t, s, http.MethodPost, "/teas", validTeaBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return decodeBody[model.Tea](t, w)
}

func createBrew(t *testing.T, s *server) (model.Brew, model.Teapot, model.Tea) {
	t.Helper()

	teapot := createTeapot(t, s)
	tea := createTea(t, s)

	body := fmt.Sprintf(`{"teapotId": %q, "teaId": %q}`, teapot.ID, tea.ID)
	w := doRequest(t, s, http.MethodPost, "/brews", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return decodeBody[model.Brew](t, w), teapot, tea
}
