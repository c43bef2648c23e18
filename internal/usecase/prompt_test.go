package usecase

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildPromptFallbacks(t *testing.T) {
	prompt := BuildPrompt([]string{}, nil, []string{"Alex"})

	if !strings.Contains(prompt, "Their favorite games they already own include: various games\n") {
		t.Errorf("missing games fallback:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Their preferred genres are: action, adventure, multiplayer\n") {
		t.Errorf("missing genres fallback:\n%s", prompt)
	}
}

func TestBuildPromptTruncation(t *testing.T) {
	games := make([]string, 15)
	for i := range games {
		games[i] = fmt.Sprintf("Game%02d", i+1)
	}
	genres := []string{"g1", "g2", "g3", "g4", "g5", "g6", "g7"}

	prompt := BuildPrompt(games, genres, []string{"Alex", "Sam"})

	wantGames := "Game01, Game02, Game03, Game04, Game05, Game06, Game07, Game08, Game09, Game10"
	if !strings.Contains(prompt, "already own include: "+wantGames+"\n") {
		t.Errorf("games clause not limited to first 10:\n%s", prompt)
	}
	if strings.Contains(prompt, "Game11") {
		t.Errorf("game beyond the 10th leaked into prompt")
	}
	if !strings.Contains(prompt, "preferred genres are: g1, g2, g3, g4, g5\n") {
		t.Errorf("genres clause not limited to first 5:\n%s", prompt)
	}
	if strings.Contains(prompt, "g6") {
		t.Errorf("genre beyond the 5th leaked into prompt")
	}
}

func TestBuildPromptFriends(t *testing.T) {
	tests := []struct {
		name    string
		friends []string
		want    string
	}{
		{name: "two", friends: []string{"Alex", "Sam"}, want: "A group of 2 friends (Alex, Sam) are looking"},
		{name: "one", friends: []string{"Alex"}, want: "A group of 1 friends (Alex) are looking"},
		{name: "none", friends: []string{}, want: "A group of 0 friends () are looking"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt(nil, nil, tt.friends)
			if !strings.HasPrefix(prompt, tt.want) {
				t.Fatalf("expected prefix %q, got:\n%s", tt.want, prompt)
			}
		})
	}
}

func TestBuildPromptExample(t *testing.T) {
	prompt := BuildPrompt(
		[]string{"Portal 2", "Left 4 Dead 2"},
		[]string{"co-op", "horror"},
		[]string{"Alex", "Sam"},
	)

	want := `A group of 2 friends (Alex, Sam) are looking for NEW multiplayer games to play together.

Their favorite games they already own include: Portal 2, Left 4 Dead 2
Their preferred genres are: co-op, horror

Recommend exactly 5 multiplayer games they DON'T already own that would be perfect for this group.
Make sure the games have active player bases and good multiplayer/co-op experiences.`

	if prompt != want {
		t.Fatalf("unexpected prompt:\n%s", prompt)
	}
}

func TestSystemInstructionCriteria(t *testing.T) {
	for _, want := range []string{
		"exactly 5 multiplayer games",
		"strong multiplayer/co-op features",
		"genre preferences",
		"highly rated and actively played",
		"good value for money",
		"NOT be games they already own",
		`"player_count"`,
		`"tags"`,
	} {
		if !strings.Contains(SystemInstruction, want) {
			t.Errorf("system instruction missing %q", want)
		}
	}
}
