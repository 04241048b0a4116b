package analyzer

import (
	"fmt"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/config"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/utils"
)

// NewModel builds the model client selected by cfg. It returns a nil Model
// and no error when no API key is configured.
func NewModel(cfg config.AIConfig, logger *utils.Logger) (Model, error) {
	if !cfg.Enabled() {
		logger.Warn("No AI API key configured, inquiry analysis will use the fallback result")
		return nil, nil
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		logger.Info("Using Gemini model", "model", cfg.Model)
		return NewGeminiClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout, logger), nil
	case config.ProviderOpenAI:
		logger.Info("Using OpenAI-compatible model", "model", cfg.Model, "base_url", cfg.BaseURL)
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider %q", cfg.Provider)
	}
}
