package analyzer

import (
	"fmt"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/models"
)

const (
	DefaultBrand = "TITAN CONSTRUCT"
	SchemaName   = "project_analysis"
)

// BuildPrompt frames the model as the brand's estimator and embeds description verbatim.
func BuildPrompt(brand, description string) string {
	return fmt.Sprintf(`You are an expert construction project estimator for a premium contracting company called %s.
Analyze the following project description from a potential client.

Project Description: "%s"

Return a JSON object with:
1. summary: a brief professional summary of the project scope (max 1 sentence).
2. recommendedService: the most relevant service category (e.g., Residential Construction, Commercial Renovation, Architectural Design, Project Management).
3. complexityEstimation: an estimated complexity level, exactly one of Low, Medium, High, Enterprise.
4. estimatedTimeline: a very rough estimated timeline range based on typical industry standards for such a project (e.g., "2-3 months", "6-8 weeks").

Be professional, concise, and realistic.`, brand, description)
}

// ResponseSchema is the JSON schema every analysis response must satisfy.
// A fresh map is returned on each call so clients may rewrite it.
func ResponseSchema() map[string]any {
	complexities := make([]any, 0, len(models.Complexities))
	for _, c := range models.Complexities {
		complexities = append(complexities, string(c))
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One-sentence summary of the project scope.",
			},
			"recommendedService": map[string]any{
				"type":        "string",
				"description": "Most relevant service category.",
			},
			"complexityEstimation": map[string]any{
				"type": "string",
				"enum": complexities,
			},
			"estimatedTimeline": map[string]any{
				"type":        "string",
				"description": "Rough timeline range, e.g. 2-3 months.",
			},
		},
		"required":             []any{"summary", "recommendedService", "complexityEstimation", "estimatedTimeline"},
		"additionalProperties": false,
	}
}
