package llm

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	llmport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/llm"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/config"
)

// NewCompletionClient builds the provider selected by llm.provider
func NewCompletionClient(ctx context.Context, cfg config.LLMConfig, logger coreport.Logger) (llmport.CompletionClient, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the %s provider", cfg.Provider)
		}
		return NewGeminiClient(ctx, GeminiOptions{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
		}, logger)
	case config.ProviderCanned:
		logger.Warn("Using canned completion provider", nil)
		return NewCannedClient(), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}
}
