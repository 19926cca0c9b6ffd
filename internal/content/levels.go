package content

// Per-activity progression tables. Every activity has 50 levels, each with
// the number of tasks required to clear it and the stars granted on clear.
// Requirements and rewards follow banded min(base + i/step, cap) formulas.

const MaxGameLevel = 50

type Difficulty string

const (
	DifficultyEasy   Difficulty = "FÁCIL"
	DifficultyMedium Difficulty = "MEDIO"
	DifficultyHard   Difficulty = "DIFÍCIL"
	DifficultyExpert Difficulty = "EXPERTO"
)

type GameID string

const (
	GameLetters       GameID = "letters"
	GameSyllables     GameID = "syllables"
	GameWords         GameID = "words"
	GameStories       GameID = "stories"
	GameSongs         GameID = "songs"
	GameFarmLetters   GameID = "farmLetters"
	GameSyllableTrain GameID = "syllableTrain"
	GameSoundForest   GameID = "soundForest"
	GameStoryCreator  GameID = "storyCreator"
)

type LevelRow struct {
	Level       int        `json:"level"`
	Requirement int        `json:"requirement"`
	Reward      int        `json:"reward"`
	Difficulty  Difficulty `json:"difficulty"`
}

type GameInfo struct {
	ID     GameID `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Levels []LevelRow
}

type levelFormula struct {
	reqBase, reqStep, reqCap int
	rewBase, rewStep, rewCap int
}

var gameFormulas = map[GameID]struct {
	name    string
	icon    string
	formula levelFormula
}{
	GameLetters:       {"MAESTRO DE LETRAS", "🔤", levelFormula{5, 5, 20, 2, 10, 10}},
	GameSyllables:     {"MAESTRO DE SÍLABAS", "🔤", levelFormula{4, 6, 12, 3, 8, 8}},
	GameWords:         {"CONSTRUCTOR DE PALABRAS", "📝", levelFormula{3, 8, 15, 3, 8, 12}},
	GameStories:       {"NARRADOR MÁGICO", "📚", levelFormula{2, 10, 8, 5, 5, 20}},
	GameSongs:         {"CANTANTE ESTRELLA", "🎵", levelFormula{2, 8, 10, 4, 6, 15}},
	GameFarmLetters:   {"GRANJERO DE LETRAS", "🚜", levelFormula{3, 7, 10, 4, 8, 12}},
	GameSyllableTrain: {"CONDUCTOR DE SÍLABAS", "🚂", levelFormula{2, 6, 8, 5, 7, 15}},
	GameSoundForest:   {"EXPLORADOR DE SONIDOS", "🌲", levelFormula{4, 8, 12, 3, 9, 8}},
	GameStoryCreator:  {"CREADOR DE CUENTOS", "📖", levelFormula{2, 10, 6, 6, 5, 20}},
}

var games map[GameID]GameInfo

func init() {
	games = make(map[GameID]GameInfo, len(gameFormulas))
	for id, g := range gameFormulas {
		info := GameInfo{ID: id, Name: g.name, Icon: g.icon, Levels: make([]LevelRow, MaxGameLevel)}
		for i := 0; i < MaxGameLevel; i++ {
			info.Levels[i] = LevelRow{
				Level:       i + 1,
				Requirement: min(g.formula.reqBase+i/g.formula.reqStep, g.formula.reqCap),
				Reward:      min(g.formula.rewBase+i/g.formula.rewStep, g.formula.rewCap),
				Difficulty:  difficultyFor(i),
			}
		}
		games[id] = info
	}
}

func difficultyFor(i int) Difficulty {
	switch {
	case i < 10:
		return DifficultyEasy
	case i < 25:
		return DifficultyMedium
	case i < 40:
		return DifficultyHard
	default:
		return DifficultyExpert
	}
}

// Game returns the static info for one activity.
func Game(id GameID) (GameInfo, bool) {
	g, ok := games[id]
	return g, ok
}

// Level returns the table row for a 1-based level of an activity.
func Level(id GameID, level int) (LevelRow, bool) {
	g, ok := games[id]
	if !ok || level < 1 || level > MaxGameLevel {
		return LevelRow{}, false
	}
	return g.Levels[level-1], true
}

// GameIDs lists all activity ids. Order is fixed.
func GameIDs() []GameID {
	return []GameID{
		GameLetters, GameSyllables, GameWords, GameStories, GameSongs,
		GameFarmLetters, GameSyllableTrain, GameSoundForest, GameStoryCreator,
	}
}
