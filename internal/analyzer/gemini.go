package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/utils"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	maxResponseBytes = 1 << 20
)

// GeminiClient calls the Gemini generateContent REST endpoint with a
// response schema, so the model answers with a JSON document.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	logger  *utils.Logger
	client  *http.Client
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	Error *geminiError `json:"error,omitempty"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func NewGeminiClient(apiKey, model, baseURL string, timeout time.Duration, logger *utils.Logger) *GeminiClient {
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: req.Prompt}},
			},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   toGeminiSchema(req.Schema),
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var out geminiResponse
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if json.Unmarshal(body, &out) == nil && out.Error != nil {
			return "", fmt.Errorf("gemini API returned status %d: %s", resp.StatusCode, out.Error.Message)
		}
		return "", fmt.Errorf("gemini API returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("gemini API error: %s", out.Error.Message)
	}
	if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("prompt blocked: %s", out.PromptFeedback.BlockReason)
	}
	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	var text strings.Builder
	for _, part := range out.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("Gemini response received",
		"model", c.model,
		"finish_reason", out.Candidates[0].FinishReason,
		"length", text.Len())

	return text.String(), nil
}

// toGeminiSchema rewrites a JSON schema into the OpenAPI subset Gemini accepts:
// upper-case type names and no additionalProperties.
func toGeminiSchema(schema map[string]any) map[string]any {
	if schema == nil {
		return nil
	}

	out := make(map[string]any, len(schema))
	for key, value := range schema {
		switch key {
		case "additionalProperties":
			continue
		case "type":
			if s, ok := value.(string); ok {
				value = strings.ToUpper(s)
			}
		case "items":
			if m, ok := value.(map[string]any); ok {
				value = toGeminiSchema(m)
			}
		case "properties":
			if props, ok := value.(map[string]any); ok {
				converted := make(map[string]any, len(props))
				for name, prop := range props {
					if m, ok := prop.(map[string]any); ok {
						converted[name] = toGeminiSchema(m)
					} else {
						converted[name] = prop
					}
				}
				value = converted
			}
		}
		out[key] = value
	}
	return out
}
