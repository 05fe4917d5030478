package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shutter-academy/academy-api/internal/api/shared"
	"github.com/shutter-academy/academy-api/internal/domain"
	"github.com/shutter-academy/academy-api/internal/platform/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// getPathID extracts a document ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (primitive.ObjectID, error) {
	return domain.ParseID(paramName, chi.URLParam(r, paramName))
}

// getPathEmail extracts and validates an email from the URL path parameters.
func getPathEmail(r *http.Request, paramName string) (string, error) {
	email, err := shared.PathParam(r, paramName)
	if err != nil {
		return "", err
	}
	email = strings.TrimSpace(email)
	if err := shared.ValidateEmail(email); err != nil {
		return "", err
	}
	return email, nil
}

// handlePathID is getPathID that writes the error response on failure.
func handlePathID(w http.ResponseWriter, r *http.Request, paramName string) (primitive.ObjectID, bool) {
	id, err := getPathID(r, paramName)
	if err != nil {
		logger.FromContext(r.Context()).Debug("invalid path id",
			"param_name", paramName,
			"value", chi.URLParam(r, paramName))
		HandleAPIError(w, r, err, "")
		return primitive.NilObjectID, false
	}
	return id, true
}

// handlePathEmail is getPathEmail that writes the error response on failure.
func handlePathEmail(w http.ResponseWriter, r *http.Request, paramName string) (string, bool) {
	email, err := getPathEmail(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return "", false
	}
	return email, true
}

// decodeAndValidate decodes the JSON body into v and validates it,
// writing a 400 response and returning false on failure.
func decodeAndValidate(
	w http.ResponseWriter,
	r *http.Request,
	v interface{},
	opts ...shared.DecodeOption,
) bool {
	if err := shared.DecodeJSON(w, r, v, opts...); err != nil {
		if MapErrorToStatusCode(err) == http.StatusBadRequest {
			HandleAPIError(w, r, err, "")
		} else {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		}
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}
