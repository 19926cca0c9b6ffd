package content

import "kidsplatform/internal/domain"

// Coin minigames report an outcome and the server computes the coin reward,
// so clients never submit raw amounts.

type MinigameID string

const (
	MinigameMemory  MinigameID = "memory"
	MinigameGoose   MinigameID = "goose"
	MinigameShapes  MinigameID = "shapes"
	MinigamePenalty MinigameID = "penalty"
)

// MinigameOutcome is what a client reports after a round.
type MinigameOutcome struct {
	Game   MinigameID `json:"game"`
	Level  int        `json:"level"`
	Result string     `json:"result"`
	Moves  int        `json:"moves"`
	Goals  int        `json:"goals"`
}

// Outcome results per game.
const (
	ResultLevelCleared  = "levelCleared" // memory, shapes, penalty: a level completed
	ResultTreasure      = "treasure"     // goose: landed on a coin space
	ResultGrandTreasure = "grandTreasure"
	ResultFinished      = "finished" // goose: reached the goal in Moves moves
	ResultMatched       = "matched"  // shapes: one shape placed
	ResultGoal          = "goal"     // penalty
	ResultSaved         = "saved"    // penalty: keeper caught it
	ResultMissed        = "missed"   // penalty: wide shot
)

// MinigameCoins computes the coin reward for one reported outcome.
func MinigameCoins(o MinigameOutcome) (int, error) {
	level := max(o.Level, 1)
	switch o.Game {
	case MinigameMemory:
		if o.Result == ResultLevelCleared {
			return 10 + level*5, nil
		}
	case MinigameGoose:
		switch o.Result {
		case ResultTreasure:
			return 5, nil
		case ResultGrandTreasure:
			return 10, nil
		case ResultFinished:
			return max(20-o.Moves, 5), nil
		}
	case MinigameShapes:
		switch o.Result {
		case ResultMatched:
			return 8, nil
		case ResultLevelCleared:
			return level * 5, nil
		}
	case MinigamePenalty:
		switch o.Result {
		case ResultGoal:
			return 10 + level*2, nil
		case ResultSaved:
			return 5, nil
		case ResultMissed:
			return 2, nil
		case ResultLevelCleared:
			return max(o.Goals, 0)*5 + level*10, nil
		}
	}
	return 0, domain.ErrInvalidArgument
}
