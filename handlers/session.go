package handlers

import (
	"net/http"

	"github.com/andrewpaige1/vocabook-api/auth"
	"github.com/andrewpaige1/vocabook-api/models"
	"github.com/andrewpaige1/vocabook-api/utils"
	"github.com/andrewpaige1/vocabook-api/validation"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.Struct(req); err != nil {
		h.writeServiceError(w, r, "login", err)
		return
	}

	user, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, r, "login", err)
		return
	}

	token, err := auth.CreateToken(h.JWT, user, h.Now())
	if err != nil {
		h.writeServiceError(w, r, "create token", err)
		return
	}

	auth.SetCookie(w, h.Cookie, token, h.JWT.TTL)
	utils.WriteJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

// POST /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearCookie(w, h.Cookie)
	utils.WriteJSON(w, http.StatusOK, statusResponse{Status: "success", Message: "Logged out"})
}

// GET /me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}
