package handlers

import (
	"net/http"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/models"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/utils"
)

// Catalog is satisfied by *content.Catalog.
type Catalog interface {
	Services() []models.Service
	Projects(category string) []models.Project
	Testimonials() []models.Testimonial
	Benefits() []models.Benefit
	Contact() models.ContactInfo
}

type ContentHandler struct {
	responder
	catalog Catalog
}

func NewContentHandler(catalog Catalog, logger *utils.Logger) *ContentHandler {
	return &ContentHandler{
		responder: responder{logger: logger},
		catalog:   catalog,
	}
}

func (h *ContentHandler) Services(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.catalog.Services())
}

func (h *ContentHandler) Projects(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.catalog.Projects(r.URL.Query().Get("category")))
}

func (h *ContentHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.catalog.Testimonials())
}

func (h *ContentHandler) Benefits(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.catalog.Benefits())
}

func (h *ContentHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.catalog.Contact())
}
