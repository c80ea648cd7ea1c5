package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"certpoints/internal/model"
	"certpoints/internal/service"
)

// ActivityHandler handles the activity rule catalog
type ActivityHandler struct {
	catalogSvc *service.CatalogService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(catalogSvc *service.CatalogService) *ActivityHandler {
	return &ActivityHandler{catalogSvc: catalogSvc}
}

// List handles GET /v1/activities
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.catalogSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rules)
}

// Get handles GET /v1/activities/{id}
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	rule, err := h.catalogSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

// Search handles GET /v1/activities/search/{query}
func (h *ActivityHandler) Search(w http.ResponseWriter, r *http.Request) {
	rules, err := h.catalogSvc.Search(r.Context(), mux.Vars(r)["query"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rules)
}

// Create handles POST /v1/activities
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var rule model.ActivityRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.catalogSvc.Create(r.Context(), &rule)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /v1/activities/{id}
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var rule model.ActivityRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.catalogSvc.Update(r.Context(), mux.Vars(r)["id"], &rule)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /v1/activities/{id}
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "activity deleted"})
}
