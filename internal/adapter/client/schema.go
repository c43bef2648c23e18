package client

import "google.golang.org/genai"

var recommendationFields = []string{"name", "price", "overview", "reason", "player_count", "tags"}

// RecommendationSchema mirrors entity.RecommendationList for providers that
// enforce a response schema server-side.
func RecommendationSchema() *genai.Schema {
	str := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}

	item := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":         str("The name of the game"),
			"price":        str("Approximate USD price or 'Free to Play'"),
			"overview":     str("2-3 sentence description of the game"),
			"reason":       str("Why this game is perfect for this specific group"),
			"player_count": str("e.g. '2-4 players', 'up to 8 players'"),
			"tags": {
				Type:        genai.TypeArray,
				Description: "Game category tags like 'Co-op', 'FPS', 'Survival'",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required:         recommendationFields,
		PropertyOrdering: recommendationFields,
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recommendations": {
				Type:        genai.TypeArray,
				Description: "Exactly 5 multiplayer game recommendations",
				Items:       item,
			},
		},
		Required: []string{"recommendations"},
	}
}
