package handlers

import (
	"net/http"

	"github.com/andrewpaige1/vocabook-api/models"
	"github.com/andrewpaige1/vocabook-api/utils"
)

// GET /learning
func (h *Handler) GetLearningCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Progress.Categories(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "list learning categories", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string][]models.Category{"categories": categories})
}

// GET /learning/{slug}
func (h *Handler) GetLearningCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	view, err := h.Progress.CategoryView(r.Context(), r.PathValue("slug"), user.ID)
	if err != nil {
		h.writeServiceError(w, r, "category view", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, view)
}

// GET /favorites
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	favorites, err := h.Progress.ListFavorites(r.Context(), user.ID)
	if err != nil {
		h.writeServiceError(w, r, "list favorites", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string][]models.Vocabulary{"favorites": favorites})
}

// GET /data-dashboard
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	stats, err := h.Dashboard.Stats(r.Context(), user.ID)
	if err != nil {
		h.writeServiceError(w, r, "dashboard stats", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, stats)
}
