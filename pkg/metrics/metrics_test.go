package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	return w.Body.String()
}

func TestNewUsesIsolatedRegistries(t *testing.T) {
	// Each instance registers into its own registry, so building two
	// must not collide.
	first := New()
	second := New()

	first.RecordEntityOperation("teapots", "create")

	assert.Contains(t, scrape(t, first), `teabrew_entity_operations_total{entity="teapots",operation="create"} 1`)
	assert.NotContains(t, scrape(t, second), `entity="teapots"`)
}

func TestRecordHTTPRequest(t *testing.T) {
	m := New()

	m.RecordHTTPRequest(http.MethodGet, "/teapots", "200", 0.042)
	m.RecordHTTPRequest(http.MethodGet, "/teapots", "200", 0.021)

	body := scrape(t, m)
	assert.Contains(t, body, `teabrew_http_requests_total{method="GET",path="/teapots",status="200"} 2`)
	assert.Contains(t, body, `teabrew_http_request_duration_seconds_count{method="GET",path="/teapots"} 2`)
}

func TestSetBuildInfo(t *testing.T) {
	m := New()

	m.SetBuildInfo("1.0.0", "abc1234", "2026-08-25")

	assert.Contains(t, scrape(t, m), `teabrew_build_info{commit="abc1234",date="2026-08-25",version="1.0.0"} 1`)
}

func TestEventMetrics(t *testing.T) {
	m := New()

	m.RecordEventBroadcast("entity_created")
	m.SetEventClients(3)

	body := scrape(t, m)
	assert.Contains(t, body, `teabrew_events_broadcast_total{type="entity_created"} 1`)
	assert.Contains(t, body, `teabrew_event_clients 3`)
}

func TestGoRuntimeMetricsExposed(t *testing.T) {
	m := New()

	assert.Contains(t, scrape(t, m), "go_goroutines")
}
