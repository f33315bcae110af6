package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/repository"
	"github.com/vaultpass/passgen/internal/service"
)

// SavedHandler handles HTTP requests for saved passwords.
type SavedHandler struct {
	service *service.SavedService
}

// NewSavedHandler creates a new SavedHandler.
func NewSavedHandler(svc *service.SavedService) *SavedHandler {
	return &SavedHandler{service: svc}
}

// HandleSave handles POST /api/v1/passwords requests.
func (h *SavedHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var req model.SaveRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	entry, err := h.service.Save(r.Context(), req)
	if err != nil {
		writeSavedError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// HandleList handles GET /api/v1/passwords requests.
func (h *SavedHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		writeSavedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func writeSavedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPasswordRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, repository.ErrCorruptStore):
		slog.Error("saved passwords are corrupt", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("saved passwords are corrupt"))
	default:
		slog.Error("saved passwords request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
