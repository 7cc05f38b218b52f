package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/andrewpaige1/vocabook-api/importer"
	"github.com/andrewpaige1/vocabook-api/models"
	"github.com/andrewpaige1/vocabook-api/service"
	"github.com/andrewpaige1/vocabook-api/utils"
	"github.com/andrewpaige1/vocabook-api/validation"
)

const maxImportSize = 10 << 20

// GET /vocabularies/list?category_id=
func (h *Handler) GetVocabularies(w http.ResponseWriter, r *http.Request) {
	var categoryID uint
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.writeServiceError(w, r, "list vocabularies", validation.Field("category_id", "must be a number"))
			return
		}
		categoryID = uint(id)
	}

	vocabularies, err := h.Catalog.ListVocabularies(r.Context(), categoryID)
	if err != nil {
		h.writeServiceError(w, r, "list vocabularies", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string][]models.Vocabulary{"vocabularies": vocabularies})
}

// POST /vocabularies
func (h *Handler) CreateVocabulary(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var in service.VocabularyInput
	if !h.decode(w, r, &in) {
		return
	}

	vocabulary, err := h.Catalog.CreateVocabulary(r.Context(), user.ID, in)
	if err != nil {
		h.writeServiceError(w, r, "create vocabulary", err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, vocabulary)
}

// PUT /vocabularies/{id}
func (h *Handler) UpdateVocabulary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var in service.VocabularyInput
	if !h.decode(w, r, &in) {
		return
	}

	vocabulary, err := h.Catalog.UpdateVocabulary(r.Context(), id, in)
	if err != nil {
		h.writeServiceError(w, r, "update vocabulary", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, vocabulary)
}

// DELETE /vocabularies/{id}
func (h *Handler) DeleteVocabulary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Catalog.DeleteVocabulary(r.Context(), id); err != nil {
		h.writeServiceError(w, r, "delete vocabulary", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /vocabularies/import
func (h *Handler) ImportVocabularies(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		h.writeServiceError(w, r, "import vocabularies", validation.Field("file", "is required"))
		return
	}
	defer file.Close()

	cfg := importer.DefaultImportConfig()
	cfg.SheetName = r.FormValue("sheet")
	cfg.CreatorID = user.ID

	result, err := h.Importer.Import(r.Context(), file, cfg)
	switch {
	case errors.Is(err, importer.ErrInvalidWorkbook):
		h.writeServiceError(w, r, "import vocabularies", validation.Field("file", "must be an xlsx workbook"))
		return
	case errors.Is(err, importer.ErrSheetNotFound):
		h.writeServiceError(w, r, "import vocabularies", validation.Field("sheet", "does not exist"))
		return
	case err != nil:
		h.writeServiceError(w, r, "import vocabularies", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}
