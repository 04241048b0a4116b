package models

import (
	"time"
)

// Complexity is the coarse effort class of a project.
type Complexity string

const (
	ComplexityLow        Complexity = "Low"
	ComplexityMedium     Complexity = "Medium"
	ComplexityHigh       Complexity = "High"
	ComplexityEnterprise Complexity = "Enterprise"
)

// Complexities lists every accepted complexity in ascending order.
var Complexities = []Complexity{
	ComplexityLow,
	ComplexityMedium,
	ComplexityHigh,
	ComplexityEnterprise,
}

func (c Complexity) Valid() bool {
	for _, known := range Complexities {
		if c == known {
			return true
		}
	}
	return false
}

// Elevated reports whether the contact form should highlight the estimate.
func (c Complexity) Elevated() bool {
	return c == ComplexityHigh || c == ComplexityEnterprise
}

// AnalysisResult is the structured assessment of a project inquiry.
// All four fields are always populated.
type AnalysisResult struct {
	Summary              string     `json:"summary"`
	RecommendedService   string     `json:"recommendedService"`
	ComplexityEstimation Complexity `json:"complexityEstimation"`
	EstimatedTimeline    string     `json:"estimatedTimeline"`
}

// FallbackResult is returned whenever a model-generated assessment cannot be obtained.
func FallbackResult() AnalysisResult {
	return AnalysisResult{
		Summary:              "We received your request and will review it manually.",
		RecommendedService:   "General Consultation",
		ComplexityEstimation: ComplexityMedium,
		EstimatedTimeline:    "TBD",
	}
}

type AnalyzeRequest struct {
	Description string `json:"description"`
}

type BriefUpload struct {
	File        []byte
	Filename    string
	ContentType string
}

type BriefAnalysisResponse struct {
	Filename        string         `json:"filename"`
	ContentType     string         `json:"content_type"`
	ExtractedLength int            `json:"extracted_length"`
	Truncated       bool           `json:"truncated"`
	Elevated        bool           `json:"elevated"`
	Analysis        AnalysisResult `json:"analysis"`
}

type SubmitRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

type SubmitResponse struct {
	Reference  string    `json:"reference"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

const (
	AnalysisModeModel    = "model"
	AnalysisModeFallback = "fallback"
)

// Readiness reports whether the service accepts traffic and how inquiries
// are analyzed. A fallback-only instance is still ready.
type Readiness struct {
	Status   string `json:"status"`
	Analysis string `json:"analysis"`
}
