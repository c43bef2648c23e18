package usecase

import (
	"fmt"
	"strings"
)

const (
	maxPromptGames  = 10
	maxPromptGenres = 5

	fallbackGames  = "various games"
	fallbackGenres = "action, adventure, multiplayer"
)

// SystemInstruction is sent with every request. It does not depend on the input.
const SystemInstruction = `You are a gaming expert who recommends multiplayer games.

Your task is to recommend exactly 5 multiplayer games that a group of friends should play together.
The games you recommend should:
1. Have strong multiplayer/co-op features
2. Match the group's genre preferences
3. Be highly rated and actively played
4. Offer good value for money
5. NOT be games they already own

For each game, provide accurate pricing (check current Steam prices), a concise overview,
and a personalized reason why this game would be perfect for this specific group.

Respond with a single JSON object of the form {"recommendations": [...]} containing exactly 5 items.
Each item must have these fields, all required and non-empty:
- "name": the name of the game
- "price": approximate USD price or "Free to Play"
- "overview": 2-3 sentence description of the game
- "reason": why this game is perfect for this specific group
- "player_count": e.g. "2-4 players", "up to 8 players"
- "tags": list of game category tags like "Co-op", "FPS", "Survival"`

// BuildPrompt renders the user prompt for one group.
func BuildPrompt(commonGames, sharedGenres, friendNames []string) string {
	games := fallbackGames
	if len(commonGames) > 0 {
		games = strings.Join(head(commonGames, maxPromptGames), ", ")
	}

	genres := fallbackGenres
	if len(sharedGenres) > 0 {
		genres = strings.Join(head(sharedGenres, maxPromptGenres), ", ")
	}

	friends := strings.Join(friendNames, ", ")

	return fmt.Sprintf(`A group of %d friends (%s) are looking for NEW multiplayer games to play together.

Their favorite games they already own include: %s
Their preferred genres are: %s

Recommend exactly 5 multiplayer games they DON'T already own that would be perfect for this group.
Make sure the games have active player bases and good multiplayer/co-op experiences.`, len(friendNames), friends, games, genres)
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
