package api

import (
	"net/http"

	"github.com/shutter-academy/academy-api/internal/api/shared"
	"github.com/shutter-academy/academy-api/internal/domain"
	"github.com/shutter-academy/academy-api/internal/platform/logger"
	"github.com/shutter-academy/academy-api/internal/store"
)

// ClassHandler serves the class catalogue and its admin operations.
type ClassHandler struct {
	classes store.ClassStore
}

// NewClassHandler creates a new ClassHandler with the given dependencies.
func NewClassHandler(classes store.ClassStore) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// CreateClass handles POST /classes.
func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req CreateClassRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.classes.Create(r.Context(), req.Class())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create class")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, res)
}

// Enroll handles PATCH /classes/{id}: takes one seat.
// A class with no seats left answers 409 and is not modified.
func (h *ClassHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.classes.Enroll(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContext(r.Context()).Info("seat taken", "class_id", id.Hex())
	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

// UpdateStatus handles PATCH /updateClassStatus/{id}.
func (h *ClassHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.classes.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

// UpsertFeedback handles PUT /classFeedback/{id}.
func (h *ClassHandler) UpsertFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	var req FeedbackRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.classes.UpsertFeedback(r.Context(), id, req.Feedback)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

// UpdateClass handles PATCH /updateClass/{id}.
func (h *ClassHandler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateClassRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch := req.Patch()
	if patch.Empty() {
		HandleAPIError(w, r, domain.NewValidationError("body", "must set at least one field", nil), "")
		return
	}

	res, err := h.classes.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

// ListClasses handles GET /classes.
func (h *ClassHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, store.ClassFilter{})
}

// ListApprovedClasses handles GET /approvedClasses.
func (h *ClassHandler) ListApprovedClasses(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, store.ClassFilter{Status: domain.ClassStatusApproved})
}

// ListInstructorClasses handles GET /instructorClasses/{email}.
func (h *ClassHandler) ListInstructorClasses(w http.ResponseWriter, r *http.Request) {
	email, ok := handlePathEmail(w, r, "email")
	if !ok {
		return
	}
	h.list(w, r, store.ClassFilter{InstructorEmail: email})
}

func (h *ClassHandler) list(w http.ResponseWriter, r *http.Request, filter store.ClassFilter) {
	classes, err := h.classes.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list classes")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, classes)
}
