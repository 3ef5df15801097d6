package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teapotframework/teabrew/pkg/model"
)

func TestCreateTeapot(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/teapots", validTeapotBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	teapot := decodeBody[model.Teapot](t, w)
	assert.NotEmpty(t, teapot.ID)
	assert.Equal(t, "Brown Betty", teapot.Name)
	assert.Equal(t, model.TeapotMaterialCeramic, teapot.Material)
	assert.Equal(t, 700, teapot.CapacityMl)
	assert.Equal(t, model.TeapotStyleEnglish, teapot.Style)
	assert.Nil(t, teapot.Description)
	assert.False(t, teapot.CreatedAt.IsZero())
	assert.Equal(t, teapot.CreatedAt, teapot.UpdatedAt)
}

func TestCreateTeapotSnakeCaseAlias(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/teapots", `{"name": "Tetsubin", "material": "cast-iron", "capacity_ml": 900}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	teapot := decodeBody[model.Teapot](t, w)
	assert.Equal(t, 900, teapot.CapacityMl)
}

func TestCreateTeapotIgnoresUnknownFields(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/teapots", `{"name": "Gaiwan", "material": "porcelain", "capacityMl": 150, "color": "white"}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateTeapotValidation(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/teapots", `{"material": "wood", "capacityMl": 9000}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, model.CodeValidationError, resp.Code)
	assert.Equal(t, "Invalid request body", resp.Message)
	assert.Equal(t, "is required", resp.Details["name"])
	assert.Equal(t, "must be one of: ceramic, cast-iron, glass, porcelain, clay, stainless-steel", resp.Details["material"])
	assert.Equal(t, "must be between 1 and 5000", resp.Details["capacityMl"])
}

func TestCreateTeapotEmptyName(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/teapots", `{"name": "", "material": "clay", "capacityMl": 350}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, model.CodeValidationError, resp.Code)
	assert.Equal(t, "must be between 1 and 100 characters", resp.Details["name"])
}

func TestCreateTeapotMalformedBody(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/teapots", `{"name": `)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, model.CodeValidationError, resp.Code)
	assert.Equal(t, "Invalid request body", resp.Message)
	assert.Equal(t, "must be a valid JSON object", resp.Details["body"])
}

func TestGetTeapot(t *testing.T) {
	s := newTestServer(t)
	created := createTeapot(t, s)

	w := doRequest(t, s, http.MethodGet, "/teapots/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	teapot := decodeBody[model.Teapot](t, w)
	assert.Equal(t, created.ID, teapot.ID)
	assert.Equal(t, created.Name, teapot.Name)
}

func TestGetTeapotNotFound(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/teapots/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, model.CodeNotFound, resp.Code)
	assert.Equal(t, "Teapot not found", resp.Message)
	assert.Nil(t, resp.Details)
}

func TestGetTeapotNullDescriptionSerialized(t *testing.T) {
	s := newTestServer(t)
	created := createTeapot(t, s)

	w := doRequest(t, s, http.MethodGet, "/teapots/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Contains(t, raw, "description")
	assert.Equal(t, "null", string(raw["description"]))
}

func TestListTeapotsEnvelope(t *testing.T) {
	s := newTestServer(t)
	createTeapot(t, s)

	w := doRequest(t, s, http.MethodGet, "/teapots", "")
	require.Equal(t, http.StatusOK, w.Code)

	page := decodeBody[model.TeapotPage](t, w)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 20, page.Pagination.Limit)
	assert.Equal(t, 1, page.Pagination.Total)
	assert.Equal(t, 1, page.Pagination.TotalPages)
}

func TestListTeapotsEmpty(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/teapots", "")
	require.Equal(t, http.StatusOK, w.Code)

	var raw struct {
		Data       json.RawMessage  `json:"data"`
		Pagination model.Pagination `json:"pagination"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "[]", string(raw.Data), "empty list must serialize as [], not null")
	assert.Equal(t, 0, raw.Pagination.Total)
	assert.Equal(t, 0, raw.Pagination.TotalPages)
}

func TestListTeapotsPagination(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 5; i++ {
		body := fmt.Sprintf(`{"name": "Pot %d", "material": "clay", "capacityMl": 200}`, i)
		w := doRequest(t, s, http.MethodPost, "/teapots", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, s, http.MethodGet, "/teapots?page=2&limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	page := decodeBody[model.TeapotPage](t, w)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Pot 2", page.Data[0].Name)
	assert.Equal(t, "Pot 3", page.Data[1].Name)
	assert.Equal(t, 5, page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}

func TestListTeapotsInvalidPagination(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/teapots?page=zero&limit=500", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, model.CodeValidationError, resp.Code)
	assert.Equal(t, "Invalid query parameters", resp.Message)
	assert.Equal(t, "must be a valid integer", resp.Details["page"])
	assert.Equal(t, "must be between 1 and 100", resp.Details["limit"])
}

func TestListTeapotsFilter(t *testing.T) {
	s := newTestServer(t)
	createTeapot(t, s)

	w := doRequest(t, s, http.MethodPost, "/teapots", `{"name": "Tetsubin", "material": "cast-iron", "capacityMl": 900}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, s, http.MethodGet, "/teapots?material=cast-iron", "")
	require.Equal(t, http.StatusOK, w.Code)

	page := decodeBody[model.TeapotPage](t, w)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Tetsubin", page.Data[0].Name)
	assert.Equal(t, 1, page.Pagination.Total)
}

func TestListTeapotsFilterInvalidValue(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/teapots?material=wood", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "Invalid query parameters", resp.Message)
	assert.Equal(t, "must be one of: ceramic, cast-iron, glass, porcelain, clay, stainless-steel", resp.Details["material"])
}

func TestUpdateTeapot(t *testing.T) {
	s := newTestServer(t)
	created := createTeapot(t, s)

	body := `{"name": "Big Betty", "material": "ceramic", "capacityMl": 1100, "style": "english", "description": "chipped"}`
	w := doRequest(t, s, http.MethodPut, "/teapots/"+created.ID, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	teapot := decodeBody[model.Teapot](t, w)
	assert.Equal(t, "Big Betty", teapot.Name)
	assert.Equal(t, 1100, teapot.CapacityMl)
	require.NotNil(t, teapot.Description)
	assert.Equal(t, "chipped", *teapot.Description)
	assert.Equal(t, created.CreatedAt, teapot.CreatedAt)
	assert.False(t, teapot.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateTeapotNotFoundBeforeBodyValidation(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPut, "/teapots/nope", `{"bogus": true}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, model.CodeNotFound, resp.Code)
	assert.Equal(t, "Teapot not found", resp.Message)
}

func TestUpdateTeapotRequiresAllFields(t *testing.T) {
	s := newTestServer(t)
	created := createTeapot(t, s)

	w := doRequest(t, s, http.MethodPut, "/teapots/"+created.ID, `{"name": "Solo"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "is required", resp.Details["material"])
	assert.Equal(t, "is required", resp.Details["capacityMl"])
	assert.Equal(t, "is required", resp.Details["style"])
}

func TestPatchTeapot(t *testing.T) {
	s := newTestServer(t)
	created := createTeapot(t, s)

	w := doRequest(t, s, http.MethodPatch, "/teapots/"+created.ID, `{"name": "Renamed"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	teapot := decodeBody[model.Teapot](t, w)
	assert.Equal(t, "Renamed", teapot.Name)
	assert.Equal(t, created.Material, teapot.Material)
	assert.Equal(t, created.CapacityMl, teapot.CapacityMl)
}

func TestPatchTeapotNotFoundBeforeBodyValidation(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPatch, "/teapots/nope", `not json`)
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "Teapot not found", resp.Message)
}

func TestPatchTeapotNullNameRejected(t *testing.T) {
	s := newTestServer(t)
	created := createTeapot(t, s)

	w := doRequest(t, s, http.MethodPatch, "/teapots/"+created.ID, `{"name": null}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "may not be null", resp.Details["name"])
}

func TestPatchTeapotClearsDescription(t *testing.T) {
	s := newTestServer(t)
	created := createTeapot(t, s)

	w := doRequest(t, s, http.MethodPatch, "/teapots/"+created.ID, `{"description": "seasoned"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s, http.MethodPatch, "/teapots/"+created.ID, `{"description": null}`)
	require.Equal(t, http.StatusOK, w.Code)

	teapot := decodeBody[model.Teapot](t, w)
	assert.Nil(t, teapot.Description)
}

func TestDeleteTeapot(t *testing.T) {
	s := newTestServer(t)
	created := createTeapot(t, s)

	w := doRequest(t, s, http.MethodDelete, "/teapots/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doRequest(t, s, http.MethodGet, "/teapots/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Deleting again reports the entity as gone.
	w = doRequest(t, s, http.MethodDelete, "/teapots/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTeapotNotFound(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodDelete, "/teapots/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, "Teapot not found", resp.Message)
}

func TestListTeapotBrews(t *testing.T) {
	s := newTestServer(t)
	brew, teapot, _ := createBrew(t, s)

	w := doRequest(t, s, http.MethodGet, "/teapots/"+teapot.ID+"/brews", "")
	require.Equal(t, http.StatusOK, w.Code)

	page := decodeBody[model.BrewPage](t, w)
	require.Len(t, page.Data, 1)
	assert.Equal(t, brew.ID, page.Data[0].ID)
}

func TestListTeapotBrewsParentNotFoundBeforeQueryValidation(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/teapots/nope/brews?page=bad", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, model.CodeNotFound, resp.Code)
	assert.Equal(t, "Teapot not found", resp.Message)
}
