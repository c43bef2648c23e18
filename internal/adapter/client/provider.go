package client

import (
	"context"
	"fmt"

	"game-matchmaker/internal/config"
	"game-matchmaker/internal/domain/entity"
	"game-matchmaker/internal/domain/repository"
	"game-matchmaker/internal/logging"
)

// UnavailableProvider stands in for a provider that could not be built.
// Every call fails with the construction error so the server can still start.
type UnavailableProvider struct {
	name  string
	cause error
}

func NewUnavailableProvider(name string, cause error) *UnavailableProvider {
	return &UnavailableProvider{name: name, cause: cause}
}

func (u *UnavailableProvider) Name() string { return u.name }

func (u *UnavailableProvider) Generate(ctx context.Context, req entity.AIRequest) (*entity.AIResponse, error) {
	return nil, fmt.Errorf("%w: %s: %v", entity.ErrProviderUnavailable, u.name, u.cause)
}

// NewProvider builds the provider selected by cfg.LLM.Provider.
func NewProvider(ctx context.Context, cfg *config.Config) repository.AIProvider {
	log := logging.With("provider")

	switch cfg.LLM.Provider {
	case config.ProviderGroq:
		if cfg.Groq.APIKey == "" {
			log.Warn().Msg("GROQ_API_KEY is not set; recommendation requests will fail")
		}
		return NewGroqClient(cfg.Groq.APIKey, cfg.Groq.Model, cfg.Groq.BaseURL, cfg.LLM.Timeout)

	case config.ProviderGemini:
		gc, err := NewGeminiClient(ctx, GeminiOptions{
			APIKey:   cfg.Gemini.APIKey,
			Project:  cfg.Gemini.Project,
			Location: cfg.Gemini.Location,
			BaseURL:  cfg.Gemini.BaseURL,
			Model:    cfg.Gemini.Model,
		})
		if err != nil {
			log.Warn().Err(err).Msg("failed to init genai client; recommendation requests will fail")
			return NewUnavailableProvider(config.ProviderGemini, err)
		}
		return gc

	default:
		return NewUnavailableProvider(cfg.LLM.Provider, fmt.Errorf("unknown provider %q", cfg.LLM.Provider))
	}
}
