package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/andrewpaige1/vocabook-api/utils"
	"github.com/andrewpaige1/vocabook-api/validation"
)

type favoriteResponse struct {
	Status    string `json:"status"`
	Favorited bool   `json:"favorited"`
	Message   string `json:"message"`
}

// POST /vocabulary/{id}/favorite
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	vocabularyID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.Progress.ToggleFavorite(r.Context(), user.ID, vocabularyID)
	if err != nil {
		h.writeServiceError(w, r, "toggle favorite", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, favoriteResponse{
		Status:    "success",
		Favorited: result.Favorited,
		Message:   result.Message,
	})
}

// POST /vocabulary/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	vocabularyID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	status, err := readStatus(r)
	if errors.Is(err, errMalformedBody) {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err != nil {
		h.writeServiceError(w, r, "update status", err)
		return
	}

	if err := h.Progress.UpdateStatus(r.Context(), user.ID, vocabularyID, status); err != nil {
		h.writeServiceError(w, r, "update status", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, statusResponse{Status: "success", Message: "Status updated successfully"})
}

var errMalformedBody = errors.New("malformed request body")

// readStatus accepts the status as a form field or a JSON property. An empty
// body or a null status reads as missing; a non-string value is a field error.
func readStatus(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data" {
		return r.FormValue("status"), nil
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			return "", nil
		case errors.As(err, &typeErr):
			return "", validation.Field("status", "is required")
		}
		return "", errMalformedBody
	}

	raw, ok := body["status"]
	if !ok || string(raw) == "null" {
		return "", nil
	}

	var status string
	if err := json.Unmarshal(raw, &status); err != nil {
		return "", validation.Field("status", "must be a string")
	}
	return status, nil
}
