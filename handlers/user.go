package handlers

import (
	"net/http"

	"github.com/andrewpaige1/vocabook-api/models"
	"github.com/andrewpaige1/vocabook-api/service"
	"github.com/andrewpaige1/vocabook-api/utils"
)

// GET /users/list
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "list users", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string][]models.User{"users": users})
}

// POST /users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in service.CreateUserInput
	if !h.decode(w, r, &in) {
		return
	}

	user, err := h.Users.Create(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, r, "create user", err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, user)
}

// PUT /users/{id}
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var in service.UpdateUserInput
	if !h.decode(w, r, &in) {
		return
	}

	user, err := h.Users.Update(r.Context(), id, in)
	if err != nil {
		h.writeServiceError(w, r, "update user", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// DELETE /users/{id}
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Users.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, "delete user", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
