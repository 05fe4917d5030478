package api

import (
	"net/http"

	"github.com/shutter-academy/academy-api/internal/api/shared"
	"github.com/shutter-academy/academy-api/internal/store"
)

// SelectedClassHandler serves a student's cart of selected classes.
type SelectedClassHandler struct {
	selections store.SelectedClassStore
}

// NewSelectedClassHandler creates a new SelectedClassHandler with the given dependencies.
func NewSelectedClassHandler(selections store.SelectedClassStore) *SelectedClassHandler {
	return &SelectedClassHandler{selections: selections}
}

// CreateSelection handles POST /selectedClasses. The referenced class is
// not checked for existence or seats.
func (h *SelectedClassHandler) CreateSelection(w http.ResponseWriter, r *http.Request) {
	var req CreateSelectedClassRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	selection, err := req.SelectedClass()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	res, err := h.selections.Create(r.Context(), selection)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to select class")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, res)
}

// ListSelections handles GET /selectedClasses/{email}.
func (h *SelectedClassHandler) ListSelections(w http.ResponseWriter, r *http.Request) {
	email, ok := handlePathEmail(w, r, "email")
	if !ok {
		return
	}

	selections, err := h.selections.ListByStudent(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list selected classes")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, selections)
}

// GetSelection handles GET /selectedAClasses/{id}.
func (h *SelectedClassHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	selection, err := h.selections.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, selection)
}

// DeleteSelection handles DELETE /selectedClasses/{id}.
func (h *SelectedClassHandler) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.selections.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, res)
}
