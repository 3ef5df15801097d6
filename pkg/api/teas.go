package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/teapotframework/teabrew/pkg/model"
)

// handleListTeas godoc
//
//	@Summary		List teas
//	@Description	Returns a paginated list of teas with optional filters
//	@Tags			teas
//	@Produce		json
//	@Param			page			query		int		false	"Page number"		default(1)	minimum(1)
//	@Param			limit			query		int		false	"Items per page"	default(20)	minimum(1)	maximum(100)
//	@Param			type			query		string	false	"Filter by tea type"
//	@Param			caffeineLevel	query		string	false	"Filter by caffeine level"
//	@Success		200	{object}	model.TeaPage
//	@Failure		400	{object}	model.ErrorResponse
//	@Router			/teas [get]
func (s *server) handleListTeas(w http.ResponseWriter, r *http.Request) {
	query, fe := model.DecodeTeaQuery(r.URL.Query())
	if fe != nil {
		s.writeValidationError(w, "Invalid query parameters", fe)

		return
	}

	teas, total, err := s.store.ListTeas(r.Context(), *query)
	if err != nil {
		s.writeInternalError(w, err, "Failed to list teas")

		return
	}

	s.writeJSON(w, http.StatusOK, model.TeaPage{
		Data:       teas,
		Pagination: model.NewPagination(query.Page, query.Limit, total),
	})
}

// handleCreateTea godoc
//
//	@Summary		Create tea
//	@Description	Registers a new tea
//	@Tags			teas
//	@Accept			json
//	@Produce		json
//	@Param			tea	body		model.CreateTeaRequest	true	"Tea to create"
//	@Success		201	{object}	model.Tea
//	@Failure		400	{object}	model.ErrorResponse
//	@Router			/teas [post]
func (s *server) handleCreateTea(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	req, fe := model.DecodeCreateTeaRequest(data)
	if fe != nil {
		s.writeValidationError(w, "Invalid request body", fe)

		return
	}

	tea := req.NewTea(uuid.NewString(), time.Now().UTC())

	if err := s.store.CreateTea(r.Context(), tea); err != nil {
		s.writeInternalError(w, err, "Failed to create tea")

		return
	}

	s.metrics.RecordEntityOperation("tea", "create")
	s.broadcastEvent(MessageTypeEntityCreated, "teas", tea)

	s.writeJSON(w, http.StatusCreated, tea)
}

// handleGetTea godoc
//
//	@Summary		Get tea
//	@Description	Returns a single tea by ID
//	@Tags			teas
//	@Produce		json
//	@Param			id	path		string	true	"Tea ID"
//	@Success		200	{object}	model.Tea
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/teas/{id} [get]
func (s *server) handleGetTea(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tea, err := s.store.GetTea(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get tea")

		return
	}

	if tea == nil {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Tea not found")

		return
	}

	s.writeJSON(w, http.StatusOK, tea)
}

// handleUpdateTea godoc
//
//	@Summary		Replace tea
//	@Description	Replaces every field of an existing tea
//	@Tags			teas
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string					true	"Tea ID"
//	@Param			tea	body		model.UpdateTeaRequest	true	"Full replacement"
//	@Success		200	{object}	model.Tea
//	@Failure		400	{object}	model.ErrorResponse
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/teas/{id} [put]
func (s *server) handleUpdateTea(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := s.store.GetTea(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get tea")

		return
	}

	if existing == nil {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Tea not found")

		return
	}

	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	req, fe := model.DecodeUpdateTeaRequest(data)
	if fe != nil {
		s.writeValidationError(w, "Invalid request body", fe)

		return
	}

	tea := req.Apply(*existing, time.Now().UTC())

	if err := s.store.UpdateTea(r.Context(), tea); err != nil {
		s.writeInternalError(w, err, "Failed to update tea")

		return
	}

	s.metrics.RecordEntityOperation("tea", "update")
	s.broadcastEvent(MessageTypeEntityUpdated, "teas", tea)

	s.writeJSON(w, http.StatusOK, tea)
}

// handlePatchTea godoc
//
//	@Summary		Update tea
//	@Description	Applies a partial update to an existing tea
//	@Tags			teas
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string					true	"Tea ID"
//	@Param			tea	body		model.PatchTeaRequest	true	"Fields to update"
//	@Success		200	{object}	model.Tea
//	@Failure		400	{object}	model.ErrorResponse
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/teas/{id} [patch]
func (s *server) handlePatchTea(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := s.store.GetTea(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get tea")

		return
	}

	if existing == nil {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Tea not found")

		return
	}

	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	req, fe := model.DecodePatchTeaRequest(data)
	if fe != nil {
		s.writeValidationError(w, "Invalid request body", fe)

		return
	}

	tea := req.Apply(*existing, time.Now().UTC())

	if err := s.store.UpdateTea(r.Context(), tea); err != nil {
		s.writeInternalError(w, err, "Failed to update tea")

		return
	}

	s.metrics.RecordEntityOperation("tea", "update")
	s.broadcastEvent(MessageTypeEntityUpdated, "teas", tea)

	s.writeJSON(w, http.StatusOK, tea)
}

// handleDeleteTea godoc
//
//	@Summary		Delete tea
//	@Description	Removes a tea
//	@Tags			teas
//	@Param			id	path	string	true	"Tea ID"
//	@Success		204	"No Content"
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/teas/{id} [delete]
func (s *server) handleDeleteTea(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := s.store.DeleteTea(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to delete tea")

		return
	}

	if !deleted {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Tea not found")

		return
	}

	s.metrics.RecordEntityOperation("tea", "delete")
	s.broadcastEvent(MessageTypeEntityDeleted, "teas", map[string]string{"id": id})

	w.WriteHeader(http.StatusNoContent)
}
