package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/middleware"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/utils"
)

type responder struct {
	logger *utils.Logger
}

func (h responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h responder) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := utils.StatusAndMessage(err)

	attrs := []any{
		"request_id", middleware.RequestIDFromContext(r.Context()),
		"status", status,
		"error", err,
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request error", attrs...)
	} else {
		h.logger.Warn("Request rejected", attrs...)
	}

	h.respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a size-limited JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return utils.NewRequestTooLargeError("Request body too large")
		}
		return utils.NewBadRequestError("Invalid JSON body")
	}
	return nil
}
