package progression

import (
	"sync"

	"kidsplatform/internal/content"
)

// Tracker counts tasks completed inside the current activity level. The
// counts are session state, not part of the profile document: they reset on
// restart, the same way the original counter reset when its screen remounted.
type Tracker struct {
	mu     sync.Mutex
	counts map[string]map[content.GameID]int
}

func NewTracker() *Tracker {
	return &Tracker{counts: make(map[string]map[content.GameID]int)}
}

// Add increments and returns the task count for one profile and activity.
func (t *Tracker) Add(profileID string, game content.GameID) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	byGame, ok := t.counts[profileID]
	if !ok {
		byGame = make(map[content.GameID]int)
		t.counts[profileID] = byGame
	}
	byGame[game]++
	return byGame[game]
}

// Reset zeroes the counter after a level-up.
func (t *Tracker) Reset(profileID string, game content.GameID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if byGame, ok := t.counts[profileID]; ok {
		delete(byGame, game)
	}
}

// Count returns the current counter without changing it.
func (t *Tracker) Count(profileID string, game content.GameID) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[profileID][game]
}
