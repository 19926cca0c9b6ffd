// Package petcare owns the time-based decay and care rules for virtual
// pets. All functions are pure over the pet and the supplied clock value.
package petcare

import (
	"math"
	"time"

	"kidsplatform/internal/content"
	"kidsplatform/internal/domain"
)

// Per-minute decay rates for the five satisfaction gauges.
const (
	hungerDecay    = 2
	hygieneDecay   = 1.5
	sleepDecay     = 1
	playDecay      = 1.5
	affectionDecay = 1
	bathroomRise   = 3
)

const maxExperience = 100

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// Decay applies need degradation for the full minutes elapsed since the
// pet was last cared for. Calling it again with the same now is a no-op:
// LastCared moves forward with each application, so the same elapsed
// window is never charged twice.
func Decay(pet *domain.VirtualPet, now time.Time) {
	minutes := (now.UnixMilli() - pet.LastCared) / 60_000
	if minutes <= 0 {
		return
	}
	m := float64(minutes)

	pet.Needs.Hunger = clamp(pet.Needs.Hunger - m*hungerDecay)
	pet.Needs.Hygiene = clamp(pet.Needs.Hygiene - m*hygieneDecay)
	pet.Needs.Sleep = clamp(pet.Needs.Sleep - m*sleepDecay)
	pet.Needs.Play = clamp(pet.Needs.Play - m*playDecay)
	pet.Needs.Affection = clamp(pet.Needs.Affection - m*affectionDecay)
	pet.Needs.Bathroom = clamp(pet.Needs.Bathroom + m*bathroomRise)

	pet.LastCared = now.UnixMilli()
	pet.Mood = DeriveMood(pet.Needs)
}

// DeriveMood maps the current gauges to a mood. ENFERMO wins over every
// other band: an urgent bathroom or a collapsed average is always sick,
// regardless of the remaining gauges.
func DeriveMood(needs domain.PetNeeds) domain.Mood {
	avg := needs.Satisfaction()
	switch {
	case needs.Bathroom > 80 || avg < 20:
		return domain.MoodEnfermo
	case avg > 80:
		return domain.MoodFeliz
	case avg > 50:
		return domain.MoodNormal
	default:
		return domain.MoodTriste
	}
}

// ApplyItem consumes one unit of a care item and applies its effects to the
// pet. Bathroom effects relieve the gauge, all others restore it. Grants 10
// experience and refreshes LastCared.
func ApplyItem(p *domain.UserProfile, pet *domain.VirtualPet, item content.Item, now time.Time) error {
	if p.OwnedItems[item.ID] <= 0 {
		return domain.ErrMissingInventory
	}

	for need, amount := range item.Effects {
		applyEffect(&pet.Needs, need, amount)
	}

	pet.Experience = min(pet.Experience+10, maxExperience)
	pet.LastCared = now.UnixMilli()
	pet.Mood = DeriveMood(pet.Needs)
	p.OwnedItems[item.ID]--
	return nil
}

// Play is the free care action: no item needed, raises play and affection
// and grants 15 experience.
func Play(pet *domain.VirtualPet, now time.Time) {
	pet.Needs.Play = clamp(pet.Needs.Play + 30)
	pet.Needs.Affection = clamp(pet.Needs.Affection + 20)
	pet.Experience = min(pet.Experience+15, maxExperience)
	pet.LastCared = now.UnixMilli()
	pet.Mood = DeriveMood(pet.Needs)
}

func applyEffect(needs *domain.PetNeeds, need domain.Need, amount float64) {
	switch need {
	case domain.NeedHunger:
		needs.Hunger = clamp(needs.Hunger + amount)
	case domain.NeedHygiene:
		needs.Hygiene = clamp(needs.Hygiene + amount)
	case domain.NeedSleep:
		needs.Sleep = clamp(needs.Sleep + amount)
	case domain.NeedPlay:
		needs.Play = clamp(needs.Play + amount)
	case domain.NeedAffection:
		needs.Affection = clamp(needs.Affection + amount)
	case domain.NeedBathroom:
		needs.Bathroom = clamp(needs.Bathroom - amount)
	}
}
