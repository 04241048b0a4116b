package handlers

import (
	"net/http"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/services"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/utils"
)

type HealthHandler struct {
	responder
	service services.InquiryService
}

func NewHealthHandler(service services.InquiryService, logger *utils.Logger) *HealthHandler {
	return &HealthHandler{
		responder: responder{logger: logger},
		service:   service,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Ready answers 200 in both model and fallback mode.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	readiness, err := h.service.Ready(r.Context())
	if err != nil {
		status, message := utils.StatusAndMessage(err)
		h.respondJSON(w, status, map[string]string{
			"status":  "unavailable",
			"details": message,
		})
		return
	}

	h.respondJSON(w, http.StatusOK, readiness)
}
