package handlers

import (
	"net/http"

	"github.com/andrewpaige1/vocabook-api/middleware"
)

// Routes registers every endpoint. authenticate must validate the session
// and load the current user.
func (h *Handler) Routes(authenticate func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	authed := func(fn http.HandlerFunc) http.Handler {
		return authenticate(fn)
	}
	admin := func(fn http.HandlerFunc) http.Handler {
		return authenticate(middleware.RequireAdmin(fn))
	}

	// Session
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("POST /logout", h.Logout)
	mux.Handle("GET /me", authed(h.Me))

	// Learning
	mux.Handle("GET /learning", authed(h.GetLearningCategories))
	mux.Handle("GET /learning/{slug}", authed(h.GetLearningCategory))
	mux.Handle("GET /favorites", authed(h.GetFavorites))
	mux.Handle("POST /vocabulary/{id}/favorite", authed(h.ToggleFavorite))
	mux.Handle("POST /vocabulary/{id}/status", authed(h.UpdateStatus))
	mux.Handle("GET /data-dashboard", authed(h.GetDashboard))

	// Users
	mux.Handle("GET /users/list", admin(h.GetUsers))
	mux.Handle("POST /users", admin(h.CreateUser))
	mux.Handle("PUT /users/{id}", admin(h.UpdateUser))
	mux.Handle("DELETE /users/{id}", admin(h.DeleteUser))

	// Categories
	mux.Handle("GET /categories/list", admin(h.GetCategories))
	mux.Handle("POST /categories", admin(h.CreateCategory))
	mux.Handle("PUT /categories/{id}", admin(h.UpdateCategory))
	mux.Handle("DELETE /categories/{id}", admin(h.DeleteCategory))

	// Vocabularies
	mux.Handle("GET /vocabularies/list", admin(h.GetVocabularies))
	mux.Handle("POST /vocabularies", admin(h.CreateVocabulary))
	mux.Handle("POST /vocabularies/import", admin(h.ImportVocabularies))
	mux.Handle("PUT /vocabularies/{id}", admin(h.UpdateVocabulary))
	mux.Handle("DELETE /vocabularies/{id}", admin(h.DeleteVocabulary))

	return mux
}
