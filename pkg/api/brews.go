package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/teapotframework/teabrew/pkg/model"
)

// handleListBrews godoc
//
//	@Summary		List brews
//	@Description	Returns a paginated list of brews with optional filters
//	@Tags			brews
//	@Produce		json
//	@Param			page		query		int		false	"Page number"		default(1)	minimum(1)
//	@Param			limit		query		int		false	"Items per page"	default(20)	minimum(1)	maximum(100)
//	@Param			status		query		string	false	"Filter by status"
//	@Param			teapotId	query		string	false	"Filter by teapot ID"
//	@Param			teaId		query		string	false	"Filter by tea ID"
//	@Success		200	{object}	model.BrewPage
//	@Failure		400	{object}	model.ErrorResponse
//	@Router			/brews [get]
func (s *server) handleListBrews(w http.ResponseWriter, r *http.Request) {
	query, fe := model.DecodeBrewQuery(r.URL.Query())
	if fe != nil {
		s.writeValidationError(w, "Invalid query parameters", fe)

		return
	}

	brews, total, err := s.store.ListBrews(r.Context(), *query)
	if err != nil {
		s.writeInternalError(w, err, "Failed to list brews")

		return
	}

	s.writeJSON(w, http.StatusOK, model.BrewPage{
		Data:       brews,
		Pagination: model.NewPagination(query.Page, query.Limit, total),
	})
}

// handleCreateBrew godoc
//
//	@Summary		Start brew
//	@Description	Starts a new brew in the preparing state. A missing teapot or tea is reported as a 400 with a NOT_FOUND code.
//	@Tags			brews
//	@Accept			json
//	@Produce		json
//	@Param			brew	body		model.CreateBrewRequest	true	"Brew to start"
//	@Success		201	{object}	model.Brew
//	@Failure		400	{object}	model.ErrorResponse
//	@Router			/brews [post]
func (s *server) handleCreateBrew(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	req, fe := model.DecodeCreateBrewRequest(data)
	if fe != nil {
		s.writeValidationError(w, "Invalid request body", fe)

		return
	}

	teapot, err := s.store.GetTeapot(r.Context(), *req.TeapotID)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get teapot")

		return
	}

	if teapot == nil {
		s.writeError(w, http.StatusBadRequest, model.CodeNotFound, "Teapot not found")

		return
	}

	tea, err := s.store.GetTea(r.Context(), *req.TeaID)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get tea")

		return
	}

	if tea == nil {
		s.writeError(w, http.StatusBadRequest, model.CodeNotFound, "Tea not found")

		return
	}

	brew := req.NewBrew(uuid.NewString(), tea.SteepTempCelsius, time.Now().UTC())

	if err := s.store.CreateBrew(r.Context(), brew); err != nil {
		s.writeInternalError(w, err, "Failed to create brew")

		return
	}

	s.metrics.RecordEntityOperation("brew", "create")
	s.broadcastEvent(MessageTypeEntityCreated, "brews", brew)

	s.writeJSON(w, http.StatusCreated, brew)
}

// handleGetBrew godoc
//
//	@Summary		Get brew
//	@Description	Returns a single brew by ID. With details=true the referenced teapot and tea are embedded.
//	@Tags			brews
//	@Produce		json
//	@Param			id		path		string	true	"Brew ID"
//	@Param			details	query		bool	false	"Embed the teapot and tea"
//	@Success		200	{object}	model.BrewWithDetails
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/brews/{id} [get]
func (s *server) handleGetBrew(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	brew, err := s.store.GetBrew(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get brew")

		return
	}

	if brew == nil {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Brew not found")

		return
	}

	if r.URL.Query().Get("details") != "true" {
		s.writeJSON(w, http.StatusOK, brew)

		return
	}

	teapot, err := s.store.GetTeapot(r.Context(), brew.TeapotID)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get teapot")

		return
	}

	if teapot == nil {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Teapot not found")

		return
	}

	tea, err := s.store.GetTea(r.Context(), brew.TeaID)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get tea")

		return
	}

	if tea == nil {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Tea not found")

		return
	}

	s.writeJSON(w, http.StatusOK, model.BrewWithDetails{
		Brew:   *brew,
		Teapot: *teapot,
		Tea:    *tea,
	})
}

// handlePatchBrew godoc
//
//	@Summary		Update brew
//	@Description	Applies a partial update to a brew's lifecycle fields
//	@Tags			brews
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Brew ID"
//	@Param			brew	body		model.PatchBrewRequest	true	"Fields to update"
//	@Success		200	{object}	model.Brew
//	@Failure		400	{object}	model.ErrorResponse
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/brews/{id} [patch]
func (s *server) handlePatchBrew(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := s.store.GetBrew(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get brew")

		return
	}

	if existing == nil {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Brew not found")

		return
	}

	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	req, fe := model.DecodePatchBrewRequest(data)
	if fe != nil {
		s.writeValidationError(w, "Invalid request body", fe)

		return
	}

	brew := req.Apply(*existing, time.Now().UTC())

	if err := s.store.UpdateBrew(r.Context(), brew); err != nil {
		s.writeInternalError(w, err, "Failed to update brew")

		return
	}

	s.metrics.RecordEntityOperation("brew", "update")
	s.broadcastEvent(MessageTypeEntityUpdated, "brews", brew)

	s.writeJSON(w, http.StatusOK, brew)
}

// handleDeleteBrew godoc
//
//	@Summary		Delete brew
//	@Description	Removes a brew and all of its steeps
//	@Tags			brews
//	@Param			id	path	string	true	"Brew ID"
//	@Success		204	"No Content"
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/brews/{id} [delete]
func (s *server) handleDeleteBrew(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := s.store.DeleteBrew(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to delete brew")

		return
	}

	if !deleted {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Brew not found")

		return
	}

	s.metrics.RecordEntityOperation("brew", "delete")
	s.broadcastEvent(MessageTypeEntityDeleted, "brews", map[string]string{"id": id})

	w.WriteHeader(http.StatusNoContent)
}

// handleListSteeps godoc
//
//	@Summary		List steeps
//	@Description	Returns a brew's steeps ordered by steep number
//	@Tags			steeps
//	@Produce		json
//	@Param			id		path		string	true	"Brew ID"
//	@Param			page	query		int		false	"Page number"		default(1)	minimum(1)
//	@Param			limit	query		int		false	"Items per page"	default(20)	minimum(1)	maximum(100)
//	@Success		200	{object}	model.SteepPage
//	@Failure		400	{object}	model.ErrorResponse
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/brews/{id}/steeps [get]
func (s *server) handleListSteeps(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	brew, err := s.store.GetBrew(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get brew")

		return
	}

	if brew == nil {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Brew not found")

		return
	}

	page, fe := model.DecodePageQuery(r.URL.Query())
	if fe != nil {
		s.writeValidationError(w, "Invalid query parameters", fe)

		return
	}

	steeps, total, err := s.store.ListSteepsByBrew(r.Context(), id, *page)
	if err != nil {
		s.writeInternalError(w, err, "Failed to list steeps")

		return
	}

	s.writeJSON(w, http.StatusOK, model.SteepPage{
		Data:       steeps,
		Pagination: model.NewPagination(page.Page, page.Limit, total),
	})
}

// handleCreateSteep godoc
//
//	@Summary		Record steep
//	@Description	Records a new steep for a brew. Steep numbers are assigned sequentially per brew.
//	@Tags			steeps
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Brew ID"
//	@Param			steep	body		model.CreateSteepRequest	true	"Steep to record"
//	@Success		201	{object}	model.Steep
//	@Failure		400	{object}	model.ErrorResponse
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/brews/{id}/steeps [post]
func (s *server) handleCreateSteep(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	brew, err := s.store.GetBrew(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get brew")

		return
	}

	if brew == nil {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Brew not found")

		return
	}

	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	req, fe := model.DecodeCreateSteepRequest(data)
	if fe != nil {
		s.writeValidationError(w, "Invalid request body", fe)

		return
	}

	steep, err := s.store.CreateSteep(r.Context(), req.NewSteep(uuid.NewString(), id, time.Now().UTC()))
	if err != nil {
		s.writeInternalError(w, err, "Failed to create steep")

		return
	}

	s.metrics.RecordEntityOperation("steep", "create")
	s.broadcastEvent(MessageTypeEntityCreated, "steeps", steep)

	s.writeJSON(w, http.StatusCreated, steep)
}
