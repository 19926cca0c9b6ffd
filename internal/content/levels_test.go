package content

import "testing"

func TestLevelTables(t *testing.T) {
	t.Run("every game has fifty levels", func(t *testing.T) {
		for _, id := range GameIDs() {
			g, ok := Game(id)
			if !ok {
				t.Fatalf("missing game %q", id)
			}
			if len(g.Levels) != MaxGameLevel {
				t.Errorf("%s has %d levels, want %d", id, len(g.Levels), MaxGameLevel)
			}
		}
	})

	t.Run("known table rows", func(t *testing.T) {
		tests := []struct {
			game             GameID
			level            int
			wantReq, wantRew int
			wantDiff         Difficulty
		}{
			{GameLetters, 1, 5, 2, DifficultyEasy},
			{GameLetters, 11, 7, 3, DifficultyMedium},
			{GameLetters, 50, 14, 6, DifficultyExpert},
			{GameSyllables, 1, 4, 3, DifficultyEasy},
			{GameStories, 26, 4, 10, DifficultyHard},
			{GameStoryCreator, 50, 6, 15, DifficultyExpert},
			{GameSyllableTrain, 41, 8, 10, DifficultyExpert},
		}
		for _, tt := range tests {
			row, ok := Level(tt.game, tt.level)
			if !ok {
				t.Fatalf("Level(%s, %d) missing", tt.game, tt.level)
			}
			if row.Requirement != tt.wantReq || row.Reward != tt.wantRew || row.Difficulty != tt.wantDiff {
				t.Errorf("Level(%s, %d) = req %d rew %d %s, want req %d rew %d %s",
					tt.game, tt.level, row.Requirement, row.Reward, row.Difficulty,
					tt.wantReq, tt.wantRew, tt.wantDiff)
			}
		}
	})

	t.Run("requirements and rewards never decrease with level", func(t *testing.T) {
		for _, id := range GameIDs() {
			g, _ := Game(id)
			for i := 1; i < len(g.Levels); i++ {
				if g.Levels[i].Requirement < g.Levels[i-1].Requirement {
					t.Errorf("%s: requirement drops at level %d", id, i+1)
				}
				if g.Levels[i].Reward < g.Levels[i-1].Reward {
					t.Errorf("%s: reward drops at level %d", id, i+1)
				}
			}
		}
	})

	t.Run("out of range lookups fail", func(t *testing.T) {
		if _, ok := Level(GameLetters, 0); ok {
			t.Error("level 0 should not resolve")
		}
		if _, ok := Level(GameLetters, 51); ok {
			t.Error("level 51 should not resolve")
		}
		if _, ok := Level("chess", 1); ok {
			t.Error("unknown game should not resolve")
		}
	})
}

func TestMinigameCoins(t *testing.T) {
	tests := []struct {
		name    string
		outcome MinigameOutcome
		want    int
		wantErr bool
	}{
		{"memory level one", MinigameOutcome{Game: MinigameMemory, Level: 1, Result: ResultLevelCleared}, 15, false},
		{"memory level three", MinigameOutcome{Game: MinigameMemory, Level: 3, Result: ResultLevelCleared}, 25, false},
		{"goose treasure", MinigameOutcome{Game: MinigameGoose, Result: ResultTreasure}, 5, false},
		{"goose grand treasure", MinigameOutcome{Game: MinigameGoose, Result: ResultGrandTreasure}, 10, false},
		{"goose quick finish", MinigameOutcome{Game: MinigameGoose, Result: ResultFinished, Moves: 12}, 8, false},
		{"goose slow finish floors at five", MinigameOutcome{Game: MinigameGoose, Result: ResultFinished, Moves: 40}, 5, false},
		{"shape matched", MinigameOutcome{Game: MinigameShapes, Result: ResultMatched}, 8, false},
		{"shapes level bonus", MinigameOutcome{Game: MinigameShapes, Level: 3, Result: ResultLevelCleared}, 15, false},
		{"penalty goal at level two", MinigameOutcome{Game: MinigamePenalty, Level: 2, Result: ResultGoal}, 14, false},
		{"penalty saved", MinigameOutcome{Game: MinigamePenalty, Result: ResultSaved}, 5, false},
		{"penalty missed", MinigameOutcome{Game: MinigamePenalty, Result: ResultMissed}, 2, false},
		{"penalty round bonus counts goals", MinigameOutcome{Game: MinigamePenalty, Level: 2, Result: ResultLevelCleared, Goals: 4}, 40, false},
		{"penalty round bonus without goals", MinigameOutcome{Game: MinigamePenalty, Level: 1, Result: ResultLevelCleared}, 10, false},
		{"unknown game", MinigameOutcome{Game: "chess", Result: ResultGoal}, 0, true},
		{"unknown result", MinigameOutcome{Game: MinigameMemory, Result: "win"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinigameCoins(tt.outcome)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("MinigameCoins = %d, want %d", got, tt.want)
			}
		})
	}
}
