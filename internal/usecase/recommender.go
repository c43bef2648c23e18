package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"game-matchmaker/internal/domain/entity"
	"game-matchmaker/internal/domain/repository"
	"game-matchmaker/internal/logging"
	"game-matchmaker/internal/metrics"
	"game-matchmaker/internal/validation"

	"github.com/goccy/go-json"
)

// Recommender builds the prompt, calls the configured provider and validates
// what comes back. It holds no per-request state.
type Recommender struct {
	aiProvider repository.AIProvider
}

func NewRecommender(ai repository.AIProvider) *Recommender {
	return &Recommender{aiProvider: ai}
}

// GetGameRecommendations returns the model's recommendations as-is once they pass validation.
// Provider failures are returned to the caller without retry.
func (u *Recommender) GetGameRecommendations(ctx context.Context, commonGames, sharedGenres, friendNames []string) ([]entity.GameRecommendation, error) {
	provider := u.aiProvider.Name()
	log := logging.With("recommender")

	req := entity.AIRequest{
		SystemInstruction: SystemInstruction,
		Prompt:            BuildPrompt(commonGames, sharedGenres, friendNames),
	}

	start := time.Now()
	resp, err := u.aiProvider.Generate(ctx, req)
	if err != nil {
		metrics.RecordProviderError(provider, "generate")
		return nil, fmt.Errorf("AI provider generation failed: %w", err)
	}
	metrics.RecordProviderCall(provider, time.Since(start), resp.TokenCount)

	recs, err := ParseRecommendations(resp.Content)
	if err != nil {
		stage := "decode"
		var verr *validation.Error
		if errors.As(err, &verr) {
			stage = "validate"
		}
		metrics.RecordProviderError(provider, stage)
		return nil, err
	}

	log.Debug().
		Str("provider", provider).
		Str("model", resp.Model).
		Int("tokens", resp.TokenCount).
		Int64("latency_ms", resp.Latency).
		Int("count", len(recs)).
		Dur("elapsed", time.Since(start)).
		Msg("recommendations generated")

	return recs, nil
}

// ParseRecommendations decodes and validates the model's JSON output.
// Nothing is coerced: any decode or shape problem is an ErrInvalidModelOutput.
func ParseRecommendations(content string) ([]entity.GameRecommendation, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrEmptyCompletion
	}

	var out entity.RecommendationList
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidModelOutput, err)
	}
	if err := validation.Struct(out); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidModelOutput, err)
	}
	return out.Recommendations, nil
}
