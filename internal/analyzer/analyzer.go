package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/models"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/utils"
)

// Model is a generative language model able to answer a prompt with a
// JSON document constrained to a schema.
type Model interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

type GenerateRequest struct {
	Prompt     string
	SchemaName string
	Schema     map[string]any
}

// InquiryAnalyzer turns free-text project descriptions into an AnalysisResult.
// It never fails: every problem resolves to models.FallbackResult.
type InquiryAnalyzer struct {
	model  Model
	brand  string
	logger *utils.Logger
}

// NewInquiryAnalyzer builds an analyzer around model. A nil model means no
// credential is configured and every call returns the fallback without I/O.
func NewInquiryAnalyzer(model Model, brand string, logger *utils.Logger) *InquiryAnalyzer {
	if brand == "" {
		brand = DefaultBrand
	}
	return &InquiryAnalyzer{
		model:  model,
		brand:  brand,
		logger: logger,
	}
}

// Enabled reports whether a model client is configured.
func (a *InquiryAnalyzer) Enabled() bool {
	return a.model != nil
}

// Analyze issues exactly one model request for description. Callers are
// expected to have checked that the trimmed description has at least 10 characters.
func (a *InquiryAnalyzer) Analyze(ctx context.Context, description string) (result models.AnalysisResult) {
	if a.model == nil {
		a.logger.Warn("Inquiry analysis skipped, using fallback", "reason", "missing_credential")
		return models.FallbackResult()
	}

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Inquiry analysis panicked, using fallback", "reason", "panic", "error", fmt.Sprint(r))
			result = models.FallbackResult()
		}
	}()

	start := time.Now()
	text, err := a.model.Generate(ctx, GenerateRequest{
		Prompt:     BuildPrompt(a.brand, description),
		SchemaName: SchemaName,
		Schema:     ResponseSchema(),
	})
	if err != nil {
		a.logger.Error("Inquiry analysis request failed, using fallback",
			"reason", "request_failed",
			"error", err,
			"duration", time.Since(start))
		return models.FallbackResult()
	}

	parsed, err := ParseResult(text)
	if err != nil {
		a.logger.Error("Inquiry analysis response rejected, using fallback",
			"reason", "invalid_response",
			"error", err,
			"response_length", len(text))
		return models.FallbackResult()
	}

	a.logger.Info("Inquiry analyzed",
		"recommended_service", parsed.RecommendedService,
		"complexity", parsed.ComplexityEstimation,
		"duration", time.Since(start))

	return parsed
}
