package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/models"
)

var ErrEmptyResponse = errors.New("model returned no text")

// rawResult keeps pointers so absent fields can be told apart from empty ones.
type rawResult struct {
	Summary              *string `json:"summary"`
	RecommendedService   *string `json:"recommendedService"`
	ComplexityEstimation *string `json:"complexityEstimation"`
	EstimatedTimeline    *string `json:"estimatedTimeline"`
}

// ParseResult decodes a model response and checks it against the response schema:
// exactly the four fields, all present and non-blank, complexity from the enum.
func ParseResult(text string) (models.AnalysisResult, error) {
	content := strings.TrimSpace(text)
	if content == "" {
		return models.AnalysisResult{}, ErrEmptyResponse
	}
	content = extractJSON(content)

	dec := json.NewDecoder(strings.NewReader(content))
	dec.DisallowUnknownFields()

	var raw rawResult
	if err := dec.Decode(&raw); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return models.AnalysisResult{}, fmt.Errorf("unexpected data after analysis JSON")
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"summary", raw.Summary},
		{"recommendedService", raw.RecommendedService},
		{"complexityEstimation", raw.ComplexityEstimation},
		{"estimatedTimeline", raw.EstimatedTimeline},
	}
	for _, f := range fields {
		if f.value == nil {
			return models.AnalysisResult{}, fmt.Errorf("missing field %q", f.name)
		}
		if strings.TrimSpace(*f.value) == "" {
			return models.AnalysisResult{}, fmt.Errorf("empty field %q", f.name)
		}
	}

	complexity := models.Complexity(*raw.ComplexityEstimation)
	if !complexity.Valid() {
		return models.AnalysisResult{}, fmt.Errorf("complexityEstimation %q is not one of %v", complexity, models.Complexities)
	}

	return models.AnalysisResult{
		Summary:              *raw.Summary,
		RecommendedService:   *raw.RecommendedService,
		ComplexityEstimation: complexity,
		EstimatedTimeline:    *raw.EstimatedTimeline,
	}, nil
}

// extractJSON strips a markdown code fence around the document, if any.
func extractJSON(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}

	nl := strings.IndexByte(content, '\n')
	if nl < 0 {
		return content
	}
	body := content[nl+1:]

	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}

	return strings.TrimSpace(body)
}
