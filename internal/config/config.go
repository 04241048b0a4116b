package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

type Config struct {
	Port      string
	LogLevel  string
	BrandName string

	AI AIConfig

	// Inquiry limits
	MaxDescriptionLength int
	MaxBriefSize         int64
	SubmitDelay          time.Duration

	CORSAllowedOrigin string
}

// AIConfig describes the generative model used for inquiry analysis.
// An empty APIKey is valid and puts the analyzer in fallback-only mode.
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// Load reads configuration from the environment, after applying a .env file if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		BrandName:         getEnv("BRAND_NAME", "TITAN CONSTRUCT"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		AI: AIConfig{
			Provider: strings.ToLower(getEnv("AI_PROVIDER", ProviderGemini)),
			APIKey:   firstEnv("API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY"),
			Model:    os.Getenv("AI_MODEL"),
			BaseURL:  os.Getenv("AI_BASE_URL"),
		},
	}

	var err error
	if cfg.AI.Timeout, err = getDuration("AI_TIMEOUT", 20*time.Second); err != nil {
		return nil, err
	}
	if cfg.SubmitDelay, err = getDuration("SUBMIT_DELAY", 1500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.MaxDescriptionLength, err = getInt("MAX_DESCRIPTION_LENGTH", 5000); err != nil {
		return nil, err
	}
	maxBrief, err := getInt("MAX_BRIEF_SIZE", 5*1024*1024)
	if err != nil {
		return nil, err
	}
	cfg.MaxBriefSize = int64(maxBrief)

	switch cfg.AI.Provider {
	case ProviderGemini:
		if cfg.AI.Model == "" {
			cfg.AI.Model = DefaultGeminiModel
		}
	case ProviderOpenAI:
		if cfg.AI.Model == "" {
			cfg.AI.Model = DefaultOpenAIModel
		}
	default:
		return nil, fmt.Errorf("AI_PROVIDER must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, cfg.AI.Provider)
	}

	if cfg.AI.Timeout <= 0 {
		return nil, fmt.Errorf("AI_TIMEOUT must be positive")
	}
	if cfg.MaxBriefSize <= 0 {
		return nil, fmt.Errorf("MAX_BRIEF_SIZE must be positive")
	}
	if cfg.MaxDescriptionLength < 10 {
		return nil, fmt.Errorf("MAX_DESCRIPTION_LENGTH must be at least 10")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
