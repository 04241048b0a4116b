package handlers

import (
	"fmt"
	"net/http"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/utils"
)

// RouteErrorHandler answers requests the router could not dispatch.
type RouteErrorHandler struct {
	responder
}

func NewRouteErrorHandler(logger *utils.Logger) *RouteErrorHandler {
	return &RouteErrorHandler{responder: responder{logger: logger}}
}

func (h *RouteErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, r, utils.NewNotFoundError("Route not found"))
}

func (h *RouteErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, r, utils.NewMethodNotAllowedError(fmt.Sprintf("Method %s not allowed", r.Method)))
}
