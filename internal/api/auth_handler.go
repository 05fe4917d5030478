package api

import (
	"net/http"

	"github.com/shutter-academy/academy-api/internal/api/shared"
	"github.com/shutter-academy/academy-api/internal/platform/logger"
	"github.com/shutter-academy/academy-api/internal/service/auth"
)

// AuthHandler issues bearer tokens.
type AuthHandler struct {
	jwtService auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
	}
}

// IssueToken handles POST /jwt. It signs the supplied email into a token
// without checking that a matching user exists.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !decodeAndValidate(w, r, &req, shared.AllowUnknownFields()) {
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), req.Email)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to generate token", "error", err)
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
