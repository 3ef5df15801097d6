package api

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/teapotframework/teabrew/pkg/api/docs"
	"github.com/teapotframework/teabrew/pkg/model"
)

// apiVersion is the fixture contract version reported by the health
// endpoint, independent of the build version.
const apiVersion = "1.0.0"

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Returns the health status of the API server
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	model.HealthResponse
//	@Router			/health [get]
func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, model.HealthResponse{
		Status:    model.HealthStatusOK,
		Timestamp: time.Now().UTC(),
		Version:   apiVersion,
	})
}

// handleLiveness godoc
//
//	@Summary		Liveness probe
//	@Description	Returns ok while the process is able to serve requests
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health/live [get]
func (s *server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadiness godoc
//
//	@Summary		Readiness probe
//	@Description	Runs the named readiness checks and reports degraded with a 503 when any of them fail
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	model.HealthResponse
//	@Failure		503	{object}	model.HealthResponse
//	@Router			/health/ready [get]
func (s *server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	checks := []model.HealthCheck{
		s.checkMemory(),
		s.checkDatabase(r.Context()),
	}

	status := model.HealthStatusOK
	httpStatus := http.StatusOK

	for _, check := range checks {
		if check.Status != model.HealthStatusOK {
			status = model.HealthStatusDegraded
			httpStatus = http.StatusServiceUnavailable

			break
		}
	}

	s.writeJSON(w, httpStatus, model.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	})
}

// checkMemory reports process heap usage.
func (s *server) checkMemory() model.HealthCheck {
	start := time.Now()

	var stats runtime.MemStats

	runtime.ReadMemStats(&stats)

	latency := time.Since(start).Milliseconds()

	return model.HealthCheck{
		Name:      "memory",
		Status:    model.HealthStatusOK,
		LatencyMs: &latency,
		Message:   fmt.Sprintf("%d MiB allocated", stats.Alloc/1024/1024),
	}
}

// checkDatabase pings the store with a short timeout.
func (s *server) checkDatabase(ctx context.Context) model.HealthCheck {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := s.store.Ping(pingCtx)
	latency := time.Since(start).Milliseconds()

	check := model.HealthCheck{
		Name:      "database",
		Status:    model.HealthStatusOK,
		LatencyMs: &latency,
	}

	if err != nil {
		check.Status = model.HealthStatusDown
		check.Message = err.Error()
	}

	return check
}

// handleBrewCoffee godoc
//
//	@Summary		Brew coffee
//	@Description	Refuses to brew coffee
//	@Tags			health
//	@Produce		json
//	@Failure		418	{object}	model.TeapotErrorResponse
//	@Router			/brew [get]
func (s *server) handleBrewCoffee(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusTeapot, model.TeapotErrorResponse{
		Error:   "I'm a teapot",
		Message: "This server is TIF-compliant and cannot brew coffee",
		Spec:    "https://teapotframework.dev",
	})
}

// handleOpenAPISpec godoc
//
//	@Summary		OpenAPI specification
//	@Description	Returns the OpenAPI specification for the API
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	object	"OpenAPI specification"
//	@Router			/openapi.json [get]
func (s *server) handleOpenAPISpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(docs.SwaggerInfo.ReadDoc()))
}
