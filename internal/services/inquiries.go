package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/config"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/extractor"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/models"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/utils"
)

// MinDescriptionLength is the shortest trimmed description worth sending to the model.
const MinDescriptionLength = 10

const referencePrefix = "TC"

type InquiryService interface {
	AnalyzeInquiry(ctx context.Context, description string) (*models.AnalysisResult, error)
	AnalyzeBrief(ctx context.Context, upload *models.BriefUpload) (*models.BriefAnalysisResponse, error)
	SubmitInquiry(ctx context.Context, req *models.SubmitRequest) (*models.SubmitResponse, error)
	Ready(ctx context.Context) (*models.Readiness, error)
}

// InquiryAnalyzer is satisfied by *analyzer.InquiryAnalyzer.
type InquiryAnalyzer interface {
	Analyze(ctx context.Context, description string) models.AnalysisResult
	Enabled() bool
}

type inquiryService struct {
	analyzer       InquiryAnalyzer
	maxDescription int
	submitDelay    time.Duration
	logger         *utils.Logger
}

func NewInquiryService(analyzer InquiryAnalyzer, cfg *config.Config, logger *utils.Logger) InquiryService {
	return &inquiryService{
		analyzer:       analyzer,
		maxDescription: cfg.MaxDescriptionLength,
		submitDelay:    cfg.SubmitDelay,
		logger:         logger,
	}
}

func (s *inquiryService) AnalyzeInquiry(ctx context.Context, description string) (*models.AnalysisResult, error) {
	if err := s.checkDescription(description); err != nil {
		return nil, err
	}

	result := s.analyzer.Analyze(ctx, description)
	return &result, nil
}

func (s *inquiryService) AnalyzeBrief(ctx context.Context, upload *models.BriefUpload) (*models.BriefAnalysisResponse, error) {
	contentType := extractor.NormalizeContentType(upload.ContentType)
	if !extractor.Supported(contentType) {
		s.logger.Warn("Unsupported brief type", "content_type", upload.ContentType, "filename", upload.Filename)
		return nil, utils.NewBadRequestError(fmt.Sprintf("Unsupported file type '%s'. Only PDF, DOCX and TXT are allowed", upload.ContentType))
	}

	text, err := extractor.Extract(contentType, upload.File)
	if err != nil {
		s.logger.Warn("Failed to extract brief text", "error", err, "content_type", contentType, "filename", upload.Filename)
		return nil, utils.NewBadRequestError("No text could be extracted from the brief. The file may be empty or corrupted")
	}

	text, truncated := truncateRunes(strings.TrimSpace(text), s.maxDescription)
	if err := s.checkDescription(text); err != nil {
		return nil, err
	}

	s.logger.Info("Analyzing project brief",
		"filename", upload.Filename,
		"content_type", contentType,
		"text_length", utf8.RuneCountInString(text),
		"truncated", truncated)

	analysis := s.analyzer.Analyze(ctx, text)

	return &models.BriefAnalysisResponse{
		Filename:        upload.Filename,
		ContentType:     contentType,
		ExtractedLength: utf8.RuneCountInString(text),
		Truncated:       truncated,
		Elevated:        analysis.ComplexityEstimation.Elevated(),
		Analysis:        analysis,
	}, nil
}

// SubmitInquiry acknowledges a contact form submission. Nothing is
// persisted or forwarded; the delay mirrors a round trip to a CRM.
func (s *inquiryService) SubmitInquiry(ctx context.Context, req *models.SubmitRequest) (*models.SubmitResponse, error) {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, utils.NewBadRequestError("First and last name are required")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return nil, utils.NewBadRequestError("A valid email address is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, utils.NewBadRequestError("Project description is required")
	}

	if s.submitDelay > 0 {
		timer := time.NewTimer(s.submitDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	ref := utils.GenerateReference(referencePrefix)
	s.logger.Info("Inquiry received", "reference", ref)

	return &models.SubmitResponse{
		Reference:  ref,
		Status:     "received",
		Message:    "Thank you. A project manager will contact you within one business day.",
		ReceivedAt: time.Now().UTC(),
	}, nil
}

// Ready reports the analysis mode. Running without a model credential is
// a supported configuration, so only a cancelled context makes it unready.
func (s *inquiryService) Ready(ctx context.Context) (*models.Readiness, error) {
	if err := ctx.Err(); err != nil {
		return nil, utils.NewServiceUnavailableError("Readiness check cancelled", err)
	}

	mode := models.AnalysisModeModel
	if !s.analyzer.Enabled() {
		mode = models.AnalysisModeFallback
	}
	return &models.Readiness{Status: "ready", Analysis: mode}, nil
}

func (s *inquiryService) checkDescription(description string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(description))
	if n < MinDescriptionLength {
		return utils.NewBadRequestError(fmt.Sprintf("Description must be at least %d characters", MinDescriptionLength))
	}
	if n > s.maxDescription {
		return utils.NewBadRequestError(fmt.Sprintf("Description must be at most %d characters", s.maxDescription))
	}
	return nil
}

func truncateRunes(s string, limit int) (string, bool) {
	if utf8.RuneCountInString(s) <= limit {
		return s, false
	}
	return strings.TrimSpace(string([]rune(s)[:limit])), true
}
