package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/venuelaunch/venuelaunch/internal/domain"
)

// WriteJSONError writes a JSON error response with the given message and status code.
// It sets the Content-Type header to application/json and automatically formats
// the response as {"error": "message"}.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteServiceError maps a service-layer error to its HTTP status. Permission
// failures stay generic so callers cannot probe for resource existence.
func WriteServiceError(w http.ResponseWriter, err error) {
	var validationErr domain.ValidationError
	var authErr *domain.AuthError
	var permErr *domain.PermissionError
	var notFoundErr *domain.ErrNotFound
	var lockErr *domain.ErrLockConflict

	switch {
	case errors.As(err, &validationErr):
		WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
	case errors.As(err, &authErr):
		WriteJSONError(w, authErr.Message, http.StatusUnauthorized)
	case errors.As(err, &permErr):
		WriteJSONError(w, permErr.Message, http.StatusForbidden)
	case errors.As(err, &notFoundErr):
		WriteJSONError(w, notFoundErr.Error(), http.StatusNotFound)
	case errors.As(err, &lockErr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error":      lockErr.Error(),
			"expires_at": lockErr.ExpiresAt,
		})
	default:
		WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}
