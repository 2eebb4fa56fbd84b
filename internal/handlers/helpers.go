package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/neervaani/neerhub/internal/models"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// DecodeBody decodes the JSON request body into v, writing a 400 on failure
func DecodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON request body")
		return false
	}
	return true
}

// WriteAgentError maps an agent error onto the HTTP response. Validation
// failures are 400s carrying field details; everything else is a 500.
func WriteAgentError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "Validation failed",
			"details": verr.Details,
		})
		return
	}

	WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"error":   "Agent invocation failed",
		"details": err.Error(),
	})
}
