package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teapotframework/teabrew/pkg/config"
	"github.com/teapotframework/teabrew/pkg/metrics"
	"github.com/teapotframework/teabrew/pkg/store"
)

// newRateLimitedServer builds a server with a small per-minute allowance
// so the limit trips on the first burst.
func newRateLimitedServer(t *testing.T, requestsPerMinute int) *server {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	st := store.NewMemoryStore(log)
	require.NoError(t, st.Start(context.Background()))
	t.Cleanup(func() { _ = st.Stop() })

	cfg := config.Default()
	cfg.Server.RateLimit.Enabled = true
	cfg.Server.RateLimit.RequestsPerMinute = requestsPerMinute

	return NewServer(log, cfg, st, metrics.New()).(*server)
}

func TestRateLimitTripsAfterBurst(t *testing.T) {
	s := newRateLimitedServer(t, 2)

	for i := 0; i < 2; i++ {
		w := doRequest(t, s, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := doRequest(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"code": "RATE_LIMITED", "message": "Rate limit exceeded"}`, w.Body.String())
}

func TestRateLimitTracksIPsIndependently(t *testing.T) {
	s := newRateLimitedServer(t, 1)

	w := doRequest(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different address gets its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "198.51.100.7:4321"

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitDisabledByDefault(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 50; i++ {
		w := doRequest(t, s, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterCleanupRemovesStaleEntries(t *testing.T) {
	rl := NewIPRateLimiter(60)

	rl.getLimiter("203.0.113.1")
	rl.getLimiter("203.0.113.2")

	rl.mu.Lock()
	rl.visitors["203.0.113.1"].lastSeen = time.Now().Add(-time.Hour)
	rl.mu.Unlock()

	rl.cleanup(10 * time.Minute)

	rl.mu.RLock()
	defer rl.mu.RUnlock()

	assert.NotContains(t, rl.visitors, "203.0.113.1")
	assert.Contains(t, rl.visitors, "203.0.113.2")
}

func TestRateLimiterReusesLimiterPerIP(t *testing.T) {
	rl := NewIPRateLimiter(60)

	first := rl.getLimiter("203.0.113.1")
	second := rl.getLimiter("203.0.113.1")

	assert.Same(t, first, second)
}
