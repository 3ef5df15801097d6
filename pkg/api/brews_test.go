package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teapotframework/teabrew/pkg/model"
)

func TestCreateBrew(t *testing.T) {
	s := newTestServer(t)

	brew, teapot, tea := createBrew(t, s)
	assert.NotEmpty(t, brew.ID)
	assert.Equal(t, teapot.ID, brew.TeapotID)
	assert.Equal(t, tea.ID, brew.TeaID)
	assert.Equal(t, model.BrewStatusPreparing, brew.Status)
	assert.Equal(t, tea.SteepTempCelsius, brew.WaterTempCelsius, "water temperature defaults to the tea's steep temperature")
	assert.Nil(t, brew.Notes)
	assert.Nil(t, brew.CompletedAt)
	assert.Equal(t, brew.CreatedAt, brew.StartedAt)
	assert.Equal(t, brew.CreatedAt, brew.UpdatedAt)
}

func TestCreateBrewExplicitWaterTemp(t *testing.T) {
	s := newTestServer(t)
	teapot := createTeapot(t, s)
	tea := createTea(t, s)

	body := fmt.Sprintf(`{"teapotId": %q, "teaId": %q, "waterTempCelsius": 90}`, teapot.ID, tea.ID)
	w := doRequest(t, s, http.MethodPost, "/brews", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	brew := decodeBody[model.Brew](t, w)
	assert.Equal(t, 90, brew.WaterTempCelsius)
}

func TestCreateBrewValidationBeforeLookups(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/brews", `{"teaId": "whatever"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, model.CodeValidationError, resp.Code)
	assert.Equal(t, "is required", resp.Details["teapotId"])
}

func TestCreateBrewUnknownTeapot(t *testing.T) {
	s := newTestServer(t)
	tea := createTea(t, s)

	body := fmt.Sprintf(`{"teapotId": "nope", "teaId": %q}`, tea.ID)
	w := doRequest(t, s, http.MethodPost, "/brews", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, model.CodeNotFound, resp.Code)
	assert.Equal(t, "Teapot not found", resp.Message)
}

func TestCreateBrewUnknownTea(t *testing.T) {
	s := newTestServer(t)
	teapot := createTeapot(t, s)

	body := fmt.Sprintf(`{"teapotId": %q, "teaId": "nope"}`, teapot.ID)
	w := doRequest(t, s, http.MethodPost, "/brews", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, model.CodeNotFound, resp.Code)
	assert.Equal(t, "Tea not found", resp.Message)
}

func TestCreateBrewChecksTeapotFirst(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/brews", `{"teapotId": "nope", "teaId": "also-nope"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "Teapot not found", resp.Message)
}

func TestCreateBrewSnakeCaseAliases(t *testing.T) {
	s := newTestServer(t)
	teapot := createTeapot(t, s)
	tea := createTea(t, s)

	body := fmt.Sprintf(`{"teapot_id": %q, "tea_id": %q, "water_temp_celsius": 85}`, teapot.ID, tea.ID)
	w := doRequest(t, s, http.MethodPost, "/brews", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	brew := decodeBody[model.Brew](t, w)
	assert.Equal(t, teapot.ID, brew.TeapotID)
	assert.Equal(t, 85, brew.WaterTempCelsius)
}

func TestGetBrewNotFound(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/brews/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "Brew not found", resp.Message)
}

func TestGetBrewWithDetails(t *testing.T) {
	s := newTestServer(t)
	brew, teapot, tea := createBrew(t, s)

	w := doRequest(t, s, http.MethodGet, "/brews/"+brew.ID+"?details=true", "")
	require.Equal(t, http.StatusOK, w.Code)

	detailed := decodeBody[model.BrewWithDetails](t, w)
	assert.Equal(t, brew.ID, detailed.ID)
	assert.Equal(t, teapot.ID, detailed.Teapot.ID)
	assert.Equal(t, teapot.Name, detailed.Teapot.Name)
	assert.Equal(t, tea.ID, detailed.Tea.ID)
	assert.Equal(t, tea.Name, detailed.Tea.Name)
}

func TestGetBrewDetailsRequiresExactTrue(t *testing.T) {
	s := newTestServer(t)
	brew, _, _ := createBrew(t, s)

	w := doRequest(t, s, http.MethodGet, "/brews/"+brew.ID+"?details=yes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"teapot"`)
}

func TestListBrewsStatusFilter(t *testing.T) {
	s := newTestServer(t)
	brew, _, _ := createBrew(t, s)

	w := doRequest(t, s, http.MethodPatch, "/brews/"+brew.ID, `{"status": "steeping"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s, http.MethodGet, "/brews?status=steeping", "")
	require.Equal(t, http.StatusOK, w.Code)

	page := decodeBody[model.BrewPage](t, w)
	require.Len(t, page.Data, 1)
	assert.Equal(t, brew.ID, page.Data[0].ID)

	w = doRequest(t, s, http.MethodGet, "/brews?status=cold", "")
	require.Equal(t, http.StatusOK, w.Code)

	page = decodeBody[model.BrewPage](t, w)
	assert.Empty(t, page.Data)
}

func TestListBrewsTeapotIDFilterAlias(t *testing.T) {
	s := newTestServer(t)
	brew, teapot, _ := createBrew(t, s)
	createBrew(t, s)

	w := doRequest(t, s, http.MethodGet, "/brews?teapot_id="+teapot.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	page := decodeBody[model.BrewPage](t, w)
	require.Len(t, page.Data, 1)
	assert.Equal(t, brew.ID, page.Data[0].ID)
}

func TestListBrewsTeaIDFilter(t *testing.T) {
	s := newTestServer(t)
	brew, _, tea := createBrew(t, s)
	createBrew(t, s)

	w := doRequest(t, s, http.MethodGet, "/brews?teaId="+tea.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	page := decodeBody[model.BrewPage](t, w)
	require.Len(t, page.Data, 1)
	assert.Equal(t, brew.ID, page.Data[0].ID)
}

func TestListBrewsInvalidStatus(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/brews?status=lukewarm", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "Invalid query parameters", resp.Message)
	assert.Equal(t, "must be one of: preparing, steeping, ready, served, cold", resp.Details["status"])
}

func TestBrewHasNoPutRoute(t *testing.T) {
	s := newTestServer(t)
	brew, _, _ := createBrew(t, s)

	w := doRequest(t, s, http.MethodPut, "/brews/"+brew.ID, `{"status": "ready"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, model.CodeNotFound, resp.Code)
	assert.Equal(t, "Resource not found", resp.Message)
}

func TestPatchBrewStatus(t *testing.T) {
	s := newTestServer(t)
	brew, _, _ := createBrew(t, s)

	w := doRequest(t, s, http.MethodPatch, "/brews/"+brew.ID, `{"status": "ready", "notes": "smells great"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decodeBody[model.Brew](t, w)
	assert.Equal(t, model.BrewStatusReady, updated.Status)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "smells great", *updated.Notes)
}

func TestPatchBrewCompletedAt(t *testing.T) {
	s := newTestServer(t)
	brew, _, _ := createBrew(t, s)

	w := doRequest(t, s, http.MethodPatch, "/brews/"+brew.ID, `{"status": "served", "completedAt": "2026-08-25T10:30:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decodeBody[model.Brew](t, w)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, "2026-08-25T10:30:00Z", updated.CompletedAt.Format("2006-01-02T15:04:05Z07:00"))

	w = doRequest(t, s, http.MethodPatch, "/brews/"+brew.ID, `{"completedAt": null}`)
	require.Equal(t, http.StatusOK, w.Code)

	updated = decodeBody[model.Brew](t, w)
	assert.Nil(t, updated.CompletedAt)
}

func TestPatchBrewBadTimestamp(t *testing.T) {
	s := newTestServer(t)
	brew, _, _ := createBrew(t, s)

	w := doRequest(t, s, http.MethodPatch, "/brews/"+brew.ID, `{"completedAt": "yesterday"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "must be an RFC 3339 timestamp", resp.Details["completedAt"])
}

func TestPatchBrewNotFoundBeforeBodyValidation(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPatch, "/brews/nope", `garbage`)
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "Brew not found", resp.Message)
}

func TestDeleteBrewCascadesSteeps(t *testing.T) {
	s := newTestServer(t)
	brew, _, _ := createBrew(t, s)

	w := doRequest(t, s, http.MethodPost, "/brews/"+brew.ID+"/steeps", `{"durationSeconds": 60}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, s, http.MethodDelete, "/brews/"+brew.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, s, http.MethodGet, "/brews/"+brew.ID+"/steeps", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "Brew not found", resp.Message)
}

func TestCreateSteepNumbering(t *testing.T) {
	s := newTestServer(t)
	brew, _, _ := createBrew(t, s)

	w := doRequest(t, s, http.MethodPost, "/brews/"+brew.ID+"/steeps", `{"durationSeconds": 45, "rating": 4}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	first := decodeBody[model.Steep](t, w)
	assert.Equal(t, 1, first.SteepNumber)
	assert.Equal(t, brew.ID, first.BrewID)
	assert.Equal(t, 45, first.DurationSeconds)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 4, *first.Rating)

	w = doRequest(t, s, http.MethodPost, "/brews/"+brew.ID+"/steeps", `{"duration_seconds": 60}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	second := decodeBody[model.Steep](t, w)
	assert.Equal(t, 2, second.SteepNumber)
	assert.Nil(t, second.Rating)
}

func TestCreateSteepValidation(t *testing.T) {
	s := newTestServer(t)
	brew, _, _ := createBrew(t, s)

	w := doRequest(t, s, http.MethodPost, "/brews/"+brew.ID+"/steeps", `{"rating": 6}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "is required", resp.Details["durationSeconds"])
	assert.Equal(t, "must be between 1 and 5", resp.Details["rating"])
}

func TestCreateSteepParentNotFound(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/brews/nope/steeps", `{"durationSeconds": 60}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "Brew not found", resp.Message)
}

func TestListSteepsParentNotFoundBeforeQueryValidation(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/brews/nope/steeps?limit=9999", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "Brew not found", resp.Message)
}

func TestListSteeps(t *testing.T) {
	s := newTestServer(t)
	brew, _, _ := createBrew(t, s)

	for i := 0; i < 3; i++ {
		w := doRequest(t, s, http.MethodPost, "/brews/"+brew.ID+"/steeps", `{"durationSeconds": 30}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, s, http.MethodGet, "/brews/"+brew.ID+"/steeps", "")
	require.Equal(t, http.StatusOK, w.Code)

	page := decodeBody[model.SteepPage](t, w)
	require.Len(t, page.Data, 3)

	for i, steep := range page.Data {
		assert.Equal(t, i+1, steep.SteepNumber)
	}

	assert.Equal(t, 3, page.Pagination.Total)
}
