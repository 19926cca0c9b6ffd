package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"kidsplatform/internal/content"
	"kidsplatform/internal/domain"
	"kidsplatform/internal/infrastructure/kv"
)

func TestDefaultProfile(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := DefaultProfile("p1", now)

	if p.Stars != 0 || p.Coins != 50 || p.Level != 1 {
		t.Errorf("stars/coins/level = %d/%d/%d, want 0/50/1", p.Stars, p.Coins, p.Level)
	}
	if len(p.OwnedAvatars) != 4 {
		t.Errorf("owned avatars = %d, want the 4 starters", len(p.OwnedAvatars))
	}
	for _, g := range content.GameIDs() {
		if p.GameLevels[string(g)] != 1 {
			t.Errorf("game %s starts at level %d, want 1", g, p.GameLevels[string(g)])
		}
	}
	if p.SchemaVersion != CurrentSchemaVersion {
		t.Errorf("schema version = %d, want %d", p.SchemaVersion, CurrentSchemaVersion)
	}
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and load round trip", func(t *testing.T) {
		repo := NewProfileRepository(kv.NewMemory())
		p := DefaultProfile("p1", time.Now())
		p.Stars = 42
		p.OwnedPets = []string{"bebe-abeja"}
		p.VirtualPets["bebe-abeja"] = &domain.VirtualPet{
			ID: "bebe-abeja", Name: "MI ABEJA",
			Needs: domain.PetNeeds{Hunger: 55.5, Hygiene: 80, Sleep: 90, Play: 70, Affection: 60, Bathroom: 12},
			Mood:  domain.MoodNormal, Level: 1, Experience: 35, LastCared: 1700000000000, Age: 3,
		}
		p.OwnedItems["milk-basic"] = 2

		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("Save: %v", err)
		}
		loaded, err := repo.Load(ctx, "p1")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}

		if loaded.Stars != 42 || loaded.OwnedItems["milk-basic"] != 2 {
			t.Errorf("loaded = stars %d items %v", loaded.Stars, loaded.OwnedItems)
		}
		pet := loaded.VirtualPets["bebe-abeja"]
		if pet == nil {
			t.Fatal("pet lost in round trip")
		}
		if pet.Needs.Hunger != 55.5 || pet.LastCared != 1700000000000 {
			t.Errorf("pet = %+v, fractional gauges and timestamps must survive", pet)
		}
	})

	t.Run("missing profile is not found", func(t *testing.T) {
		repo := NewProfileRepository(kv.NewMemory())
		if _, err := repo.Load(ctx, "ghost"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("corrupt document fails closed to defaults", func(t *testing.T) {
		store := kv.NewMemory()
		store.Set(ctx, "kidsProfile:p1", "{not json")

		repo := NewProfileRepository(store)
		p, err := repo.Load(ctx, "p1")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if p.Level != 1 || p.Coins != 50 {
			t.Errorf("corrupt load: got level %d coins %d, want fresh defaults", p.Level, p.Coins)
		}
	})

	t.Run("v1 document migrates forward", func(t *testing.T) {
		// The original pre-pet profile: identity, stars and level only.
		store := kv.NewMemory()
		store.Set(ctx, "kidsProfile:p1",
			`{"name":"Mi Bebé Llorón","age":6,"language":"both","avatar":"💕","stars":23,"level":3}`)

		repo := NewProfileRepository(store)
		p, err := repo.Load(ctx, "p1")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}

		if p.Stars != 23 || p.Level != 3 {
			t.Errorf("stars/level = %d/%d, migration must not touch earned progress", p.Stars, p.Level)
		}
		if p.Coins != 50 {
			t.Errorf("Coins = %d, want the v2 default of 50", p.Coins)
		}
		if len(p.OwnedAvatars) != 4 {
			t.Errorf("owned avatars = %v, want the starters", p.OwnedAvatars)
		}
		if p.VirtualPets == nil || p.GameLevels["letters"] != 1 {
			t.Errorf("pet and game maps not initialized: %+v", p)
		}
		if p.SchemaVersion != CurrentSchemaVersion {
			t.Errorf("schema version = %d, want %d", p.SchemaVersion, CurrentSchemaVersion)
		}
	})

	t.Run("newer documents keep unknown-field tolerance", func(t *testing.T) {
		store := kv.NewMemory()
		store.Set(ctx, "kidsProfile:p1",
			`{"schemaVersion":2,"id":"p1","stars":5,"level":1,"futureField":{"x":1}}`)

		repo := NewProfileRepository(store)
		p, err := repo.Load(ctx, "p1")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if p.Stars != 5 {
			t.Errorf("Stars = %d, want 5", p.Stars)
		}
	})

	t.Run("list returns stored ids", func(t *testing.T) {
		repo := NewProfileRepository(kv.NewMemory())
		now := time.Now()
		repo.Save(ctx, DefaultProfile("a", now))
		repo.Save(ctx, DefaultProfile("b", now))

		ids, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(ids) != 2 {
			t.Errorf("List = %v, want two ids", ids)
		}
	})
}
