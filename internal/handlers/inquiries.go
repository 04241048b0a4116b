package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/extractor"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/models"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/services"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/utils"
)

const (
	MaxJSONBodySize = 64 << 10 // 64KB

	// multipart boundaries and headers on top of the file itself
	multipartOverhead = 64 << 10
)

type InquiryHandler struct {
	responder
	service      services.InquiryService
	maxBriefSize int64
}

func NewInquiryHandler(service services.InquiryService, maxBriefSize int64, logger *utils.Logger) *InquiryHandler {
	return &InquiryHandler{
		responder:    responder{logger: logger},
		service:      service,
		maxBriefSize: maxBriefSize,
	}
}

func (h *InquiryHandler) AnalyzeInquiry(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := decodeJSON(w, r, MaxJSONBodySize, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.service.AnalyzeInquiry(r.Context(), req.Description)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

func (h *InquiryHandler) AnalyzeBrief(w http.ResponseWriter, r *http.Request) {
	tooLarge := utils.NewRequestTooLargeError(fmt.Sprintf("File size exceeds %dMB limit", h.maxBriefSize>>20))

	if r.ContentLength > h.maxBriefSize+multipartOverhead {
		h.respondError(w, r, tooLarge)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBriefSize+multipartOverhead)

	if err := r.ParseMultipartForm(h.maxBriefSize); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) || strings.Contains(err.Error(), "request body too large") {
			h.respondError(w, r, tooLarge)
			return
		}
		h.respondError(w, r, utils.NewBadRequestError("Invalid form data"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, r, utils.NewBadRequestError("No file provided"))
		return
	}
	defer file.Close()

	contentType := extractor.DetectContentType(header.Filename, header.Header.Get("Content-Type"))

	h.logger.Info("Brief upload attempt",
		"filename", header.Filename,
		"reported_content_type", header.Header.Get("Content-Type"),
		"determined_content_type", contentType)

	data, err := io.ReadAll(io.LimitReader(file, h.maxBriefSize+1))
	if err != nil {
		h.respondError(w, r, utils.NewInternalError("Failed to read file"))
		return
	}
	if int64(len(data)) > h.maxBriefSize {
		h.respondError(w, r, tooLarge)
		return
	}
	if len(data) == 0 {
		h.respondError(w, r, utils.NewBadRequestError("Uploaded file is empty"))
		return
	}

	resp, err := h.service.AnalyzeBrief(r.Context(), &models.BriefUpload{
		File:        data,
		Filename:    header.Filename,
		ContentType: contentType,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *InquiryHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := decodeJSON(w, r, MaxJSONBodySize, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	resp, err := h.service.SubmitInquiry(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusAccepted, resp)
}
