package usecase

import (
	"context"

	"kidsplatform/internal/content"
	"kidsplatform/internal/domain"
	"kidsplatform/internal/progression"
)

// AwardStars is the reward callback for educational activities.
func (uc *ProfileUseCase) AwardStars(ctx context.Context, id string, amount int) (*domain.UserProfile, error) {
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := progression.AwardStars(p, amount); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ReportMinigame converts a coin-minigame outcome into a coin award.
func (uc *ProfileUseCase) ReportMinigame(ctx context.Context, id string, outcome content.MinigameOutcome) (*domain.UserProfile, int, error) {
	coins, err := content.MinigameCoins(outcome)
	if err != nil {
		return nil, 0, err
	}
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	if err := progression.AwardCoins(p, coins); err != nil {
		return nil, 0, err
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, 0, err
	}
	return p, coins, nil
}

// CompleteGameTask records one finished task and applies any level-up.
func (uc *ProfileUseCase) CompleteGameTask(ctx context.Context, id string, game content.GameID) (progression.TaskResult, *domain.UserProfile, error) {
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return progression.TaskResult{}, nil, err
	}
	res, err := progression.CompleteGameTask(p, game, uc.tracker)
	if err != nil {
		return progression.TaskResult{}, nil, err
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return progression.TaskResult{}, nil, err
	}
	return res, p, nil
}

// GameProgress describes where a profile stands in one activity.
type GameProgress struct {
	Game        content.GameID     `json:"game"`
	Name        string             `json:"name"`
	Icon        string             `json:"icon"`
	Level       int                `json:"level"`
	TasksDone   int                `json:"tasksDone"`
	Requirement int                `json:"requirement"`
	Reward      int                `json:"reward"`
	Difficulty  content.Difficulty `json:"difficulty"`
}

// GameProgressFor returns the current level row and task counter for one
// activity.
func (uc *ProfileUseCase) GameProgressFor(ctx context.Context, id string, game content.GameID) (GameProgress, error) {
	info, ok := content.Game(game)
	if !ok {
		return GameProgress{}, domain.ErrInvalidArgument
	}
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return GameProgress{}, err
	}
	level := p.GameLevels[string(game)]
	if level < 1 {
		level = 1
	}
	row, _ := content.Level(game, level)
	return GameProgress{
		Game:        game,
		Name:        info.Name,
		Icon:        info.Icon,
		Level:       level,
		TasksDone:   uc.tracker.Count(id, game),
		Requirement: row.Requirement,
		Reward:      row.Reward,
		Difficulty:  row.Difficulty,
	}, nil
}

// Achievements evaluates the unlocked achievements and stickers.
func (uc *ProfileUseCase) Achievements(ctx context.Context, id string) ([]progression.AchievementState, []string, error) {
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return progression.EvaluateAchievements(p), progression.UnlockedStickers(p), nil
}
