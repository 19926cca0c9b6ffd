package repository

import (
	"time"

	"kidsplatform/internal/content"
	"kidsplatform/internal/domain"
)

// CurrentSchemaVersion of the stored profile document. Version 1 was the
// minimal profile (name, age, language, avatar, stars, level); version 2
// added coins, ownership sets, pets and per-activity levels.
const CurrentSchemaVersion = 2

const (
	defaultName  = "Mi Bebé Llorón"
	defaultAge   = 6
	defaultCoins = 50
)

// DefaultProfile is what a brand-new installation gets: no stars, starter
// coins, level 1, the four starter avatars pre-owned, everything else empty.
func DefaultProfile(id string, now time.Time) *domain.UserProfile {
	p := &domain.UserProfile{
		SchemaVersion: CurrentSchemaVersion,
		ID:            id,
		Name:          defaultName,
		Age:           defaultAge,
		Language:      domain.LanguageBoth,
		Avatar:        "bebe-abeja",
		Stars:         0,
		Coins:         defaultCoins,
		Level:         1,
		OwnedAvatars:  content.StarterAvatarIDs(),
		OwnedPets:     []string{},
		OwnedItems:    map[string]int{},
		VirtualPets:   map[string]*domain.VirtualPet{},
		GameLevels:    map[string]int{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, g := range content.GameIDs() {
		p.GameLevels[string(g)] = 1
	}
	return p
}

// fillDefaults is the forward-compatible merge applied after every load:
// fields a saved document is missing get the same values a new profile
// would, so old documents keep loading under newer schemas.
func fillDefaults(p *domain.UserProfile, id string, now time.Time) {
	if p.ID == "" {
		p.ID = id
	}
	if p.Name == "" {
		p.Name = defaultName
	}
	if p.Age <= 0 {
		p.Age = defaultAge
	}
	if !p.Language.Valid() {
		p.Language = domain.LanguageBoth
	}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.Stars < 0 {
		p.Stars = 0
	}
	if p.Coins < 0 {
		p.Coins = 0
	}
	if len(p.OwnedAvatars) == 0 {
		p.OwnedAvatars = content.StarterAvatarIDs()
	}
	if p.Avatar == "" {
		p.Avatar = p.OwnedAvatars[0]
	}
	if p.OwnedPets == nil {
		p.OwnedPets = []string{}
	}
	if p.OwnedItems == nil {
		p.OwnedItems = map[string]int{}
	}
	if p.VirtualPets == nil {
		p.VirtualPets = map[string]*domain.VirtualPet{}
	}
	if p.GameLevels == nil {
		p.GameLevels = map[string]int{}
	}
	for _, g := range content.GameIDs() {
		if p.GameLevels[string(g)] < 1 {
			p.GameLevels[string(g)] = 1
		}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
}
