package llm

import (
	"fmt"
	"os"
)

// Provider identifies a completion backend.
type Provider string

const (
	ProviderDeepSeek Provider = "deepseek"
	ProviderOpenAI   Provider = "openai"
	ProviderGemini   Provider = "gemini"
)

// ProviderConfig holds the resolved provider and credentials.
type ProviderConfig struct {
	Provider Provider
	APIKey   string
	BaseURL  string // optional endpoint override
	Model    string // optional model override
}

// DetectProvider resolves a provider from environment variables.
// Priority: DEEPSEEK > OPENAI > GEMINI.
func DetectProvider() (*ProviderConfig, error) {
	providers := []struct {
		envVar   string
		provider Provider
	}{
		{"DEEPSEEK_API_KEY", ProviderDeepSeek},
		{"OPENAI_API_KEY", ProviderOpenAI},
		{"GEMINI_API_KEY", ProviderGemini},
	}

	for _, p := range providers {
		if key := os.Getenv(p.envVar); key != "" {
			return &ProviderConfig{Provider: p.provider, APIKey: key}, nil
		}
	}

	return nil, fmt.Errorf("no API key found; set one of: DEEPSEEK_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY")
}

// NewClientFromEnv creates a completion client from environment variables.
func NewClientFromEnv() (Client, error) {
	cfg, err := DetectProvider()
	if err != nil {
		return nil, err
	}
	return NewClientFromConfig(cfg)
}

// NewClientFromConfig creates a completion client from a provider config.
func NewClientFromConfig(cfg *ProviderConfig) (Client, error) {
	switch cfg.Provider {
	case ProviderDeepSeek, "":
		dsCfg := DefaultDeepSeekConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			dsCfg.BaseURL = cfg.BaseURL
		}
		if cfg.Model != "" {
			dsCfg.Model = cfg.Model
		}
		return NewDeepSeekClientWithConfig(dsCfg), nil

	case ProviderOpenAI:
		return NewOpenAIClientWithConfig(OpenAIConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		}), nil

	case ProviderGemini:
		return NewGeminiClient(cfg.APIKey, cfg.Model)

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
