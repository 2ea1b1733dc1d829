// Package controllers translates HTTP requests into service calls and maps
// outcomes to status codes and JSON bodies. Expected conditions (bad input,
// absent rows) get precise messages; unexpected failures are logged in full
// and surfaced with a generic message only.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sulaimon23/blog-post/app/models"
)

// Helper functions for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"error": message})
}

// isValidationError reports whether err is one of the create-post
// validation failures that should surface as a 400 with its own message.
func isValidationError(err error) bool {
	var tooLong *models.TooLongError
	return errors.Is(err, models.ErrMissingFields) ||
		errors.Is(err, models.ErrEmptyFields) ||
		errors.As(err, &tooLong)
}
