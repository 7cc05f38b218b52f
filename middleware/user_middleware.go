package middleware

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/andrewpaige1/vocabook-api/models"
	"github.com/andrewpaige1/vocabook-api/repository"
	"github.com/andrewpaige1/vocabook-api/utils"
)

type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// CurrentUser resolves the token subject to a stored user and attaches it to context.
func CurrentUser(users UserFinder, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserID(r)
			if !ok {
				utils.WriteError(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if errors.Is(err, repository.ErrNotFound) {
				// Token outlived the account.
				utils.WriteError(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}
			if err != nil {
				log.Error("load current user", zap.Uint("user_id", userID), zap.Error(err))
				utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
		})
	}
}

// RequireAdmin rejects users whose role is not admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.CurrentUser(r.Context())
		if !ok {
			utils.WriteError(w, http.StatusUnauthorized, "Unauthenticated.")
			return
		}
		if !user.Role.IsAdmin() {
			utils.WriteError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
