package repository

import (
	"context"
	"game-matchmaker/internal/domain/entity"
)

// AIProvider turns a prompt into the model's raw structured output.
type AIProvider interface {
	Generate(ctx context.Context, req entity.AIRequest) (*entity.AIResponse, error)
	Name() string
}
