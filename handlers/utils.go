package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/andrewpaige1/vocabook-api/models"
	"github.com/andrewpaige1/vocabook-api/service"
	"github.com/andrewpaige1/vocabook-api/utils"
	"github.com/andrewpaige1/vocabook-api/validation"
)

const msgInvalidData = "The given data was invalid."

type validationResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := utils.CurrentUser(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthenticated.")
		return nil, false
	}
	return user, true
}

// pathID reads a numeric path value; malformed ids are reported as not found.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 64)
	if err != nil || id == 0 {
		utils.WriteError(w, http.StatusNotFound, "Not found")
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// writeServiceError maps service errors to responses.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		utils.WriteJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Status:  "error",
			Message: msgInvalidData,
			Errors:  verrs.Fields(),
		})
	case errors.Is(err, service.ErrNotFound):
		utils.WriteError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.WriteError(w, http.StatusUnauthorized, "These credentials do not match our records.")
	case errors.Is(err, service.ErrDuplicate):
		utils.WriteError(w, http.StatusConflict, "Conflict")
	default:
		h.Log.Error(op,
			zap.String("request_id", utils.RequestID(r.Context())),
			zap.Error(err),
		)
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
