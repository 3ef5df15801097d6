package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/teapotframework/teabrew/pkg/model"
)

// handleListTeapots godoc
//
//	@Summary		List teapots
//	@Description	Returns a paginated list of teapots with optional filters
//	@Tags			teapots
//	@Produce		json
//	@Param			page		query		int		false	"Page number"		default(1)	minimum(1)
//	@Param			limit		query		int		false	"Items per page"	default(20)	minimum(1)	maximum(100)
//	@Param			material	query		string	false	"Filter by material"
//	@Param			style		query		string	false	"Filter by style"
//	@Success		200	{object}	model.TeapotPage
//	@Failure		400	{object}	model.ErrorResponse
//	@Router			/teapots [get]
func (s *server) handleListTeapots(w http.ResponseWriter, r *http.Request) {
	query, fe := model.DecodeTeapotQuery(r.URL.Query())
	if fe != nil {
		s.writeValidationError(w, "Invalid query parameters", fe)

		return
	}

	teapots, total, err := s.store.ListTeapots(r.Context(), *query)
	if err != nil {
		s.writeInternalError(w, err, "Failed to list teapots")

		return
	}

	s.writeJSON(w, http.StatusOK, model.TeapotPage{
		Data:       teapots,
		Pagination: model.NewPagination(query.Page, query.Limit, total),
	})
}

// handleCreateTeapot godoc
//
//	@Summary		Create teapot
//	@Description	Registers a new teapot
//	@Tags			teapots
//	@Accept			json
//	@Produce		json
//	@Param			teapot	body		model.CreateTeapotRequest	true	"Teapot to create"
//	@Success		201	{object}	model.Teapot
//	@Failure		400	{object}	model.ErrorResponse
//	@Router			/teapots [post]
func (s *server) handleCreateTeapot(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	req, fe := model.DecodeCreateTeapotRequest(data)
	if fe != nil {
		s.writeValidationError(w, "Invalid request body", fe)

		return
	}

	teapot := req.NewTeapot(uuid.NewString(), time.Now().UTC())

	if err := s.store.CreateTeapot(r.Context(), teapot); err != nil {
		s.writeInternalError(w, err, "Failed to create teapot")

		return
	}

	s.metrics.RecordEntityOperation("teapot", "create")
	s.broadcastEvent(MessageTypeEntityCreated, "teapots", teapot)

	s.writeJSON(w, http.StatusCreated, teapot)
}

// handleGetTeapot godoc
//
//	@Summary		Get teapot
//	@Description	Returns a single teapot by ID
//	@Tags			teapots
//	@Produce		json
//	@Param			id	path		string	true	"Teapot ID"
//	@Success		200	{object}	model.Teapot
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/teapots/{id} [get]
func (s *server) handleGetTeapot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	teapot, err := s.store.GetTeapot(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get teapot")

		return
	}

	if teapot == nil {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Teapot not found")

		return
	}

	s.writeJSON(w, http.StatusOK, teapot)
}

// handleUpdateTeapot godoc
//
//	@Summary		Replace teapot
//	@Description	Replaces every field of an existing teapot
//	@Tags			teapots
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Teapot ID"
//	@Param			teapot	body		model.UpdateTeapotRequest	true	"Full replacement"
//	@Success		200	{object}	model.Teapot
//	@Failure		400	{object}	model.ErrorResponse
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/teapots/{id} [put]
func (s *server) handleUpdateTeapot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := s.store.GetTeapot(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get teapot")

		return
	}

	if existing == nil {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Teapot not found")

		return
	}

	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	req, fe := model.DecodeUpdateTeapotRequest(data)
	if fe != nil {
		s.writeValidationError(w, "Invalid request body", fe)

		return
	}

	teapot := req.Apply(*existing, time.Now().UTC())

	if err := s.store.UpdateTeapot(r.Context(), teapot); err != nil {
		s.writeInternalError(w, err, "Failed to update teapot")

		return
	}

	s.metrics.RecordEntityOperation("teapot", "update")
	s.broadcastEvent(MessageTypeEntityUpdated, "teapots", teapot)

	s.writeJSON(w, http.StatusOK, teapot)
}

// handlePatchTeapot godoc
//
//	@Summary		Update teapot
//	@Description	Applies a partial update to an existing teapot
//	@Tags			teapots
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Teapot ID"
//	@Param			teapot	body		model.PatchTeapotRequest	true	"Fields to update"
//	@Success		200	{object}	model.Teapot
//	@Failure		400	{object}	model.ErrorResponse
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/teapots/{id} [patch]
func (s *server) handlePatchTeapot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := s.store.GetTeapot(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get teapot")

		return
	}

	if existing == nil {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Teapot not found")

		return
	}

	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	req, fe := model.DecodePatchTeapotRequest(data)
	if fe != nil {
		s.writeValidationError(w, "Invalid request body", fe)

		return
	}

	teapot := req.Apply(*existing, time.Now().UTC())

	if err := s.store.UpdateTeapot(r.Context(), teapot); err != nil {
		s.writeInternalError(w, err, "Failed to update teapot")

		return
	}

	s.metrics.RecordEntityOperation("teapot", "update")
	s.broadcastEvent(MessageTypeEntityUpdated, "teapots", teapot)

	s.writeJSON(w, http.StatusOK, teapot)
}

// handleDeleteTeapot godoc
//
//	@Summary		Delete teapot
//	@Description	Removes a teapot
//	@Tags			teapots
//	@Param			id	path	string	true	"Teapot ID"
//	@Success		204	"No Content"
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/teapots/{id} [delete]
func (s *server) handleDeleteTeapot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := s.store.DeleteTeapot(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to delete teapot")

		return
	}

	if !deleted {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Teapot not found")

		return
	}

	s.metrics.RecordEntityOperation("teapot", "delete")
	s.broadcastEvent(MessageTypeEntityDeleted, "teapots", map[string]string{"id": id})

	w.WriteHeader(http.StatusNoContent)
}

// handleListTeapotBrews godoc
//
//	@Summary		List brews for a teapot
//	@Description	Returns a paginated list of the brews made in a teapot
//	@Tags			teapots
//	@Produce		json
//	@Param			id		path		string	true	"Teapot ID"
//	@Param			page	query		int		false	"Page number"		default(1)	minimum(1)
//	@Param			limit	query		int		false	"Items per page"	default(20)	minimum(1)	maximum(100)
//	@Success		200	{object}	model.BrewPage
//	@Failure		400	{object}	model.ErrorResponse
//	@Failure		404	{object}	model.ErrorResponse
//	@Router			/teapots/{id}/brews [get]
func (s *server) handleListTeapotBrews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	teapot, err := s.store.GetTeapot(r.Context(), id)
	if err != nil {
		s.writeInternalError(w, err, "Failed to get teapot")

		return
	}

	if teapot == nil {
		s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Teapot not found")

		return
	}

	page, fe := model.DecodePageQuery(r.URL.Query())
	if fe != nil {
		s.writeValidationError(w, "Invalid query parameters", fe)

		return
	}

	brews, total, err := s.store.ListBrewsByTeapot(r.Context(), id, *page)
	if err != nil {
		s.writeInternalError(w, err, "Failed to list brews")

		return
	}

	s.writeJSON(w, http.StatusOK, model.BrewPage{
		Data:       brews,
		Pagination: model.NewPagination(page.Page, page.Limit, total),
	})
}
