package api

import (
	"net/http"
	"strings"

	"github.com/shutter-academy/academy-api/internal/api/shared"
	"github.com/shutter-academy/academy-api/internal/domain"
	"github.com/shutter-academy/academy-api/internal/store"
)

// UserHandler serves user profiles and the instructor directory.
type UserHandler struct {
	users store.UserStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// UpsertUser handles PUT /users/{email}.
func (h *UserHandler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	email, ok := handlePathEmail(w, r, "email")
	if !ok {
		return
	}

	var req UpsertUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.Email != "" && !strings.EqualFold(req.Email, email) {
		HandleAPIError(w, r,
			domain.NewValidationError("email", "must match the path email", domain.ErrInvalidEmail), "")
		return
	}

	res, err := h.users.Upsert(r.Context(), email, req.Profile())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

// ListInstructors handles GET /instructors.
func (h *UserHandler) ListInstructors(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListByRole(r.Context(), domain.RoleInstructor)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list instructors")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}
