package domain

import "time"

type Language string

const (
	LanguageES   Language = "es"
	LanguageEN   Language = "en"
	LanguageBoth Language = "both"
)

func (l Language) Valid() bool {
	return l == LanguageES || l == LanguageEN || l == LanguageBoth
}

// UserProfile is the single persisted document per player. It is always
// loaded, mutated and saved as a whole.
type UserProfile struct {
	SchemaVersion int    `json:"schemaVersion"`
	ID            string `json:"id"`

	Name     string   `json:"name"`
	Age      int      `json:"age"`
	Language Language `json:"language"`
	Avatar   string   `json:"avatar"`

	Stars int `json:"stars"`
	Coins int `json:"coins"`
	Level int `json:"level"`

	OwnedAvatars []string               `json:"ownedAvatars"`
	OwnedPets    []string               `json:"ownedPets"`
	OwnedItems   map[string]int         `json:"ownedItems"`
	VirtualPets  map[string]*VirtualPet `json:"virtualPets"`
	GameLevels   map[string]int         `json:"gameLevels"`

	// Optional parent PIN, bcrypt hash. Empty means no PIN was set.
	PinHash string `json:"pinHash,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *UserProfile) OwnsAvatar(id string) bool {
	for _, a := range p.OwnedAvatars {
		if a == id {
			return true
		}
	}
	return false
}

func (p *UserProfile) OwnsPet(id string) bool {
	for _, s := range p.OwnedPets {
		if s == id {
			return true
		}
	}
	return false
}
