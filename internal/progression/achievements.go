package progression

import (
	"kidsplatform/internal/content"
	"kidsplatform/internal/domain"
)

// AchievementState is one achievement with its unlock state for a profile.
type AchievementState struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement int    `json:"requirement"`
	Unlocked    bool   `json:"unlocked"`
}

// EvaluateAchievements derives the unlock state of every achievement from
// the current profile. Pure; no state is stored.
func EvaluateAchievements(p *domain.UserProfile) []AchievementState {
	defs := content.Achievements()
	out := make([]AchievementState, 0, len(defs))
	for _, a := range defs {
		out = append(out, AchievementState{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			Requirement: a.Requirement,
			Unlocked:    a.Unlocks(p),
		})
	}
	return out
}

// UnlockedStickers returns the stickers unlocked so far: three per player
// level, capped at the full collection.
func UnlockedStickers(p *domain.UserProfile) []string {
	all := content.Stickers()
	n := min(p.Level*3, len(all))
	if n < 0 {
		n = 0
	}
	return all[:n]
}
