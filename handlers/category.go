package handlers

import (
	"net/http"

	"github.com/andrewpaige1/vocabook-api/models"
	"github.com/andrewpaige1/vocabook-api/service"
	"github.com/andrewpaige1/vocabook-api/utils"
)

// GET /categories/list
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.ListCategories(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "list categories", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string][]models.Category{"categories": categories})
}

// POST /categories
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in service.CategoryInput
	if !h.decode(w, r, &in) {
		return
	}

	category, err := h.Catalog.CreateCategory(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, r, "create category", err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, category)
}

// PUT /categories/{id}
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var in service.CategoryInput
	if !h.decode(w, r, &in) {
		return
	}

	category, err := h.Catalog.UpdateCategory(r.Context(), id, in)
	if err != nil {
		h.writeServiceError(w, r, "update category", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, category)
}

// DELETE /categories/{id}
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Catalog.DeleteCategory(r.Context(), id); err != nil {
		h.writeServiceError(w, r, "delete category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
