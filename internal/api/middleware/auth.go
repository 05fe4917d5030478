package middleware

import (
	"net/http"
	"strings"

	"github.com/shutter-academy/academy-api/internal/api/shared"
	"github.com/shutter-academy/academy-api/internal/domain"
	"github.com/shutter-academy/academy-api/internal/platform/logger"
	"github.com/shutter-academy/academy-api/internal/redact"
	"github.com/shutter-academy/academy-api/internal/service/auth"
)

// UnauthorizedMessage is the body message for every rejected credential.
const UnauthorizedMessage = "Unauthorized access"

// ForbiddenMessage is returned when the token owner does not match the resource.
const ForbiddenMessage = "Forbidden access"

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer token from the Authorization header and
// adds the caller's email to the request context. Every failure is a 401
// with the same body, {"error": true, "message": "Unauthorized access"}.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			log.Debug("rejecting request without usable bearer token")
			respondUnauthorized(w, r)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			log.Debug("rejecting request with invalid token", "error", redact.Error(err))
			respondUnauthorized(w, r)
			return
		}

		ctx := shared.WithEmail(r.Context(), claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// respondUnauthorized writes the guard's fixed 401 body. Unlike other error
// responses it carries no trace_id.
func respondUnauthorized(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusUnauthorized, shared.ErrorResponse{
		Error:   true,
		Message: UnauthorizedMessage,
		Code:    http.StatusUnauthorized,
	})
}

// bearerToken extracts the token from a "Bearer <token>" header value.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// GetEmail extracts the authenticated email from the request context.
// Returns the email and a boolean indicating if it was found.
func GetEmail(r *http.Request) (string, bool) {
	return shared.EmailFromContext(r.Context())
}

// RequireOwnEmail rejects requests whose authenticated email differs from
// the decoded chi URL parameter param. When enforce is false it passes every
// request through unchanged.
func RequireOwnEmail(param string, enforce bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enforce {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := GetEmail(r)
			if !ok {
				respondUnauthorized(w, r)
				return
			}
			owner, err := shared.PathParam(r, param)
			if err != nil {
				shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid "+param, err)
				return
			}
			if !strings.EqualFold(caller, strings.TrimSpace(owner)) {
				shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, ForbiddenMessage, domain.ErrForbidden,
					shared.WithElevatedLogLevel())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
