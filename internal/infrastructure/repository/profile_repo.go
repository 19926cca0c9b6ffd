package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"kidsplatform/internal/domain"
	"kidsplatform/internal/infrastructure/kv"
)

// keyPrefix is the well-known storage namespace for profile documents.
const keyPrefix = "kidsProfile:"

// ProfileRepository reads and writes whole profile documents through the
// key-value channel. One key per profile, last write wins.
type ProfileRepository struct {
	store kv.Store
}

func NewProfileRepository(store kv.Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

func profileKey(id string) string {
	return keyPrefix + id
}

// Load reads one profile. A missing key returns domain.ErrNotFound. A
// document that fails to parse is replaced by defaults rather than
// crashing the session; missing fields are merged with defaults and old
// schema versions are migrated forward.
func (r *ProfileRepository) Load(ctx context.Context, id string) (*domain.UserProfile, error) {
	raw, err := r.store.Get(ctx, profileKey(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		// Storage unavailable: fail closed to defaults for the session.
		log.Printf("profile %s: storage read failed, using defaults: %v", id, err)
		return DefaultProfile(id, time.Now()), nil
	}

	now := time.Now()
	var p domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Printf("profile %s: corrupt document, using defaults: %v", id, err)
		return DefaultProfile(id, now), nil
	}

	migrate(&p, now)
	fillDefaults(&p, id, now)
	return &p, nil
}

// Save serializes and writes the whole profile. Write failures are logged
// and swallowed: the in-memory copy stays authoritative for the session
// but will not survive a restart. Documented limitation, not a bug.
func (r *ProfileRepository) Save(ctx context.Context, p *domain.UserProfile) error {
	p.UpdatedAt = time.Now()
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, profileKey(p.ID), string(raw)); err != nil {
		log.Printf("profile %s: storage write failed, keeping in-memory copy: %v", p.ID, err)
	}
	return nil
}

// List returns the ids of every stored profile.
func (r *ProfileRepository) List(ctx context.Context) ([]string, error) {
	keys, err := r.store.Keys(ctx, keyPrefix)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, keyPrefix))
	}
	return ids, nil
}
