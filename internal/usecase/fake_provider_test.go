package usecase

import (
	"context"
	"fmt"
	"strings"

	"game-matchmaker/internal/domain/entity"
)

type fakeProvider struct {
	content string
	err     error
	calls   int
	last    entity.AIRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(ctx context.Context, req entity.AIRequest) (*entity.AIResponse, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &entity.AIResponse{Content: f.content, Model: "fake-1", TokenCount: 42}, nil
}

func fiveRecommendationsJSON() string {
	items := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		items = append(items, fmt.Sprintf(`{
			"name": "Game %d",
			"price": "$%d.99",
			"overview": "A co-op game. Play with friends.",
			"reason": "Fits a group that likes co-op horror.",
			"player_count": "2-4 players",
			"tags": ["Co-op", "Horror"]
		}`, i, 10+i))
	}
	return `{"recommendations": [` + strings.Join(items, ",") + `]}`
}
