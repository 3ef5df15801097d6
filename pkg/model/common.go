package model

import "time"

// Error codes returned in ErrorResponse bodies.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

// ErrorResponse is the standard error payload. Details is populated only
// for validation failures.
type ErrorResponse struct {
	Code    string            `json:"code" example:"VALIDATION_ERROR"`
	Message string            `json:"message" example:"Invalid request body"`
	Details map[string]string `json:"details,omitempty"`
}

// Pagination is the metadata attached to every list response.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"20"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"totalPages" example:"3"`
}

// NewPagination computes pagination metadata for a result set. A zero
// total yields zero pages.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// HealthStatus is the state reported by health checks.
type HealthStatus string

const (
	HealthStatusOK       HealthStatus = "ok"
	HealthStatusDegraded HealthStatus = "degraded"
	HealthStatusDown     HealthStatus = "down"
)

// HealthCheck is a single named readiness check result.
type HealthCheck struct {
	Name      string       `json:"name" example:"database"`
	Status    HealthStatus `json:"status" example:"ok"`
	LatencyMs *int64       `json:"latencyMs,omitempty"`
	Message   string       `json:"message,omitempty"`
}

// HealthResponse is the payload of the health endpoints. Version appears
// on the basic health check, Checks on the readiness check.
type HealthResponse struct {
	Status    HealthStatus  `json:"status" example:"ok"`
	Timestamp time.Time     `json:"timestamp"`
	Version   string        `json:"version,omitempty" example:"1.0.0"`
	Checks    []HealthCheck `json:"checks,omitempty"`
}

// TeapotErrorResponse is the fixed body of the TIF signature endpoint.
type TeapotErrorResponse struct {
	Error   string `json:"error" example:"I'm a teapot"`
	Message string `json:"message" example:"This server is TIF-compliant and cannot brew coffee"`
	Spec    string `json:"spec" example:"https://teapotframework.dev"`
}
