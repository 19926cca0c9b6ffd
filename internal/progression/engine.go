// Package progression holds the pure reward and purchase rules. Nothing in
// here does I/O; callers load the profile, apply an event and persist.
package progression

import (
	"fmt"
	"strings"
	"time"

	"kidsplatform/internal/content"
	"kidsplatform/internal/domain"
)

// AwardStars adds stars and runs the level check. The check is single-step:
// an award that crosses two thresholds at once still advances one level,
// matching the shipped behavior.
func AwardStars(p *domain.UserProfile, amount int) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	p.Stars += amount
	if p.Stars >= p.Level*10 {
		p.Level++
	}
	return nil
}

// AwardCoins adds coins. Coins never interact with the player level.
func AwardCoins(p *domain.UserProfile, amount int) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	p.Coins += amount
	return nil
}

// TaskResult reports the state of one activity after a completed task.
type TaskResult struct {
	Game        content.GameID `json:"game"`
	Level       int            `json:"level"`
	TasksDone   int            `json:"tasksDone"`
	Requirement int            `json:"requirement"`
	LeveledUp   bool           `json:"leveledUp"`
	RewardStars int            `json:"rewardStars"`
}

// CompleteGameTask records one finished task for an activity. When the task
// counter reaches the current level's requirement the activity level goes up
// by one, the counter resets and the level's star reward is granted. Level 50
// is the cap; tasks past it count but never level up.
func CompleteGameTask(p *domain.UserProfile, game content.GameID, tracker *Tracker) (TaskResult, error) {
	level := p.GameLevels[string(game)]
	if level < 1 {
		level = 1
	}
	row, ok := content.Level(game, level)
	if !ok {
		return TaskResult{}, fmt.Errorf("%w: unknown game %q", domain.ErrInvalidArgument, game)
	}

	done := tracker.Add(p.ID, game)
	res := TaskResult{Game: game, Level: level, TasksDone: done, Requirement: row.Requirement}

	if done < row.Requirement {
		return res, nil
	}

	// The counter resets whenever the requirement is met, including at the
	// cap, so it never grows without bound.
	tracker.Reset(p.ID, game)
	res.TasksDone = 0
	if level >= content.MaxGameLevel {
		return res, nil
	}

	p.GameLevels[string(game)] = level + 1
	res.Level = level + 1
	res.LeveledUp = true
	res.RewardStars = row.Reward
	if err := AwardStars(p, row.Reward); err != nil {
		return res, err
	}
	return res, nil
}

// PurchaseAvatar debits stars and adds the avatar to the owned set.
func PurchaseAvatar(p *domain.UserProfile, avatarID string) error {
	av, ok := content.AvatarByID(avatarID)
	if !ok {
		return fmt.Errorf("%w: unknown avatar %q", domain.ErrInvalidArgument, avatarID)
	}
	if p.OwnsAvatar(avatarID) {
		return domain.ErrAlreadyOwned
	}
	if p.Stars < av.Cost {
		return domain.ErrInsufficientFunds
	}
	p.Stars -= av.Cost
	p.OwnedAvatars = append(p.OwnedAvatars, avatarID)
	return nil
}

// SelectAvatar sets the active avatar. Only owned avatars are selectable.
func SelectAvatar(p *domain.UserProfile, avatarID string) error {
	if !p.OwnsAvatar(avatarID) {
		return domain.ErrMissingInventory
	}
	p.Avatar = avatarID
	return nil
}

// PurchasePet debits stars, adds the species to the owned set and creates a
// freshly adopted pet instance: every gauge satisfied, FELIZ, level 1.
func PurchasePet(p *domain.UserProfile, petID string, now time.Time) (*domain.VirtualPet, error) {
	species, ok := content.PetByID(petID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown pet %q", domain.ErrInvalidArgument, petID)
	}
	if p.OwnsPet(petID) {
		return nil, domain.ErrAlreadyOwned
	}
	if p.Stars < species.Cost {
		return nil, domain.ErrInsufficientFunds
	}

	pet := &domain.VirtualPet{
		ID:    species.ID,
		Name:  "MI " + strings.ToUpper(strings.TrimPrefix(species.ID, "bebe-")),
		Image: species.Image,
		Needs: domain.PetNeeds{
			Hunger: 100, Hygiene: 100, Sleep: 100,
			Play: 100, Affection: 100, Bathroom: 0,
		},
		Mood:       domain.MoodFeliz,
		Level:      1,
		Experience: 0,
		LastCared:  now.UnixMilli(),
		Age:        1,
	}

	p.Stars -= species.Cost
	p.OwnedPets = append(p.OwnedPets, petID)
	if p.VirtualPets == nil {
		p.VirtualPets = make(map[string]*domain.VirtualPet)
	}
	p.VirtualPets[petID] = pet
	return pet, nil
}

// PurchaseItem debits coins and adds the item's quantity to the inventory.
func PurchaseItem(p *domain.UserProfile, itemID string) error {
	item, ok := content.ItemByID(itemID)
	if !ok {
		return fmt.Errorf("%w: unknown item %q", domain.ErrInvalidArgument, itemID)
	}
	if p.Coins < item.Cost {
		return domain.ErrInsufficientFunds
	}
	p.Coins -= item.Cost
	if p.OwnedItems == nil {
		p.OwnedItems = make(map[string]int)
	}
	p.OwnedItems[itemID] += item.Quantity
	return nil
}
